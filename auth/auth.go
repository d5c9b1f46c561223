// Copyright 2020 DataStax
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package auth implements the client side of the SASL-like exchange that follows an AUTHENTICATE
// response: one InitialResponse, then zero or more EvaluateChallenge round trips driven by
// AUTH_CHALLENGE, until the server answers with AUTH_SUCCESS or ERROR.
package auth

import "fmt"

// Authenticator produces the bytes carried by AUTH_RESPONSE messages. A new Authenticator is
// selected for every connection; it is not safe to reuse one across connections that authenticate
// concurrently.
type Authenticator interface {
	// InitialResponse returns the token for the first AUTH_RESPONSE, given the class name the server
	// named in its AUTHENTICATE message.
	InitialResponse(authenticatorClass string) ([]byte, error)
	// EvaluateChallenge returns the token to answer an AUTH_CHALLENGE.
	EvaluateChallenge(challenge []byte) ([]byte, error)
}

// UnknownAuthenticatorError is returned by Select when no Authenticator knows how to speak to the
// class name the server advertised.
type UnknownAuthenticatorError struct {
	ClassName string
}

func (e *UnknownAuthenticatorError) Error() string {
	return fmt.Sprintf("unknown authenticator class: %s", e.ClassName)
}

// knownPasswordAuthenticators are the authenticator class names PasswordAuthenticator knows how to
// satisfy with plain username/password credentials.
var knownPasswordAuthenticators = map[string]bool{
	"org.apache.cassandra.auth.PasswordAuthenticator": true,
	"com.datastax.bdp.cassandra.auth.DseAuthenticator": true,
}

// Select returns an Authenticator for authenticatorClass given a username and password, or
// UnknownAuthenticatorError if the class name is not recognized.
func Select(authenticatorClass, username, password string) (Authenticator, error) {
	if knownPasswordAuthenticators[authenticatorClass] {
		return &PasswordAuthenticator{Username: username, Password: password}, nil
	}
	return nil, &UnknownAuthenticatorError{ClassName: authenticatorClass}
}
