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

package auth

import "fmt"

// PasswordAuthenticator satisfies org.apache.cassandra.auth.PasswordAuthenticator (and the DSE
// authenticator acting in plain-text mode) by sending a single token of the form
// "\0username\0password" and never expecting a challenge.
type PasswordAuthenticator struct {
	Username string
	Password string
}

func (a *PasswordAuthenticator) token() []byte {
	token := make([]byte, 0, len(a.Username)+len(a.Password)+2)
	token = append(token, 0)
	token = append(token, a.Username...)
	token = append(token, 0)
	token = append(token, a.Password...)
	return token
}

func (a *PasswordAuthenticator) InitialResponse(authenticatorClass string) ([]byte, error) {
	if !knownPasswordAuthenticators[authenticatorClass] {
		return nil, &UnknownAuthenticatorError{ClassName: authenticatorClass}
	}
	return a.token(), nil
}

// EvaluateChallenge is never expected: PasswordAuthenticator answers AUTHENTICATE with a single
// token and the server should reply with AUTH_SUCCESS directly.
func (a *PasswordAuthenticator) EvaluateChallenge(challenge []byte) ([]byte, error) {
	return nil, fmt.Errorf("unexpected AUTH_CHALLENGE for password authentication: %q", challenge)
}
