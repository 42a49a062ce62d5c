// Package sendemail implements the send-email request handler.
//
// A Handler takes a raw JSON body, validates it, sends one email through a
// mailer.Sender and maps the outcome to an Envelope (status, JSON body and a
// fixed set of JSON/CORS headers):
//
//	| Condition                          | Status | Body                               |
//	|------------------------------------|--------|------------------------------------|
//	| empty body                         | 400    | {error}                            |
//	| malformed JSON                     | 400    | {error, details}                   |
//	| JSON null                          | 400    | {error}                            |
//	| missing from / to / subject / body | 400    | {error}                            |
//	| provider rejection                 | 500    | {error, details}                   |
//	| any other failure                  | 500    | {error, details}                   |
//	| sent                               | 200    | {message, messageId, from, to}     |
//
// Required fields are checked in the order from, to, subject, body and the
// first empty one determines the message. Handle never panics and never
// returns an error; ServeHTTP and HandleAPIGateway are thin adapters for
// net/http and AWS Lambda.
package sendemail
