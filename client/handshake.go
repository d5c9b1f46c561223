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

package client

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/cassandra-proto/cqlproto/auth"
	"github.com/cassandra-proto/cqlproto/frame"
	"github.com/cassandra-proto/cqlproto/message"
)

// Credentials carries the username/password pair the handshake presents if the server requires
// authentication. A nil *Credentials means "do not authenticate".
type Credentials struct {
	Username string
	Password string
}

// HandshakeOptions configures the startup handshake. PreferredCqlVersion, if non-empty, is used
// instead of the server's greatest offered version, provided the server actually offers it.
// PreferredCompression, if non-empty, is only sent in STARTUP when the server's SUPPORTED response
// advertises that exact algorithm name and this core recognizes it (frame.RecognizedCompressions);
// otherwise the handshake proceeds uncompressed rather than failing.
type HandshakeOptions struct {
	Credentials          *Credentials
	PreferredCqlVersion   string
	PreferredCompression string
}

// Handshake performs OPTIONS -> SUPPORTED -> STARTUP -> (READY | AUTHENTICATE/AUTH_CHALLENGE loop).
// Each step goes through Call, so it uses whichever stream id the connection's pool hands out: on a
// fresh connection OPTIONS gets stream id 0 and the following steps 1, 2, and so on. It returns the negotiated CQL_VERSION once the connection is ready to
// accept ordinary requests, or a *HandshakeError / *CqlError describing why it could not get there.
func Handshake(ctx context.Context, conn *Connection, opts HandshakeOptions) (string, error) {
	log.Debug().Msgf("%v: starting handshake", conn)

	optionsResp, err := conn.Call(ctx, frame.NewRequestFrame(0, &message.Options{}))
	if err != nil {
		return "", &HandshakeError{Message: fmt.Sprintf("OPTIONS failed: %v", err)}
	}
	supported, ok := optionsResp.Message.(*message.Supported)
	if !ok {
		return "", &HandshakeError{Message: fmt.Sprintf("expected SUPPORTED, got %v", optionsResp.Message)}
	}

	cqlVersion, err := chooseCqlVersion(supported, opts.PreferredCqlVersion)
	if err != nil {
		return "", &HandshakeError{Message: err.Error()}
	}

	compressionName, negotiated := frame.NegotiateCompression(supported.Compressions(), opts.PreferredCompression)
	if opts.PreferredCompression != "" && !negotiated {
		log.Warn().Msgf("%v: server does not support requested compression %q, continuing uncompressed",
			conn, opts.PreferredCompression)
	}

	startupResp, err := conn.Call(ctx, frame.NewRequestFrame(0, &message.Startup{
		CqlVersion:  cqlVersion,
		Compression: compressionName,
	}))
	if err != nil {
		return "", &HandshakeError{Message: fmt.Sprintf("STARTUP failed: %v", err)}
	}
	if err := handleStartupResponse(ctx, conn, startupResp, opts.Credentials); err != nil {
		return "", err
	}
	return cqlVersion, nil
}

func chooseCqlVersion(supported *message.Supported, preferred string) (string, error) {
	latest, err := supported.LatestCqlVersion()
	if err != nil {
		return "", fmt.Errorf("no usable CQL_VERSION offered by server: %w", err)
	}
	if preferred == "" {
		return latest, nil
	}
	versions, found := supported.Options.Get("CQL_VERSION")
	if !found {
		return "", fmt.Errorf("server did not advertise CQL_VERSION")
	}
	for _, v := range versions {
		if v == preferred {
			return preferred, nil
		}
	}
	return "", fmt.Errorf("server does not offer preferred CQL_VERSION %s", preferred)
}

func handleStartupResponse(ctx context.Context, conn *Connection, resp *frame.Frame, creds *Credentials) error {
	switch msg := resp.Message.(type) {
	case *message.Ready:
		log.Info().Msgf("%v: handshake complete, no authentication required", conn)
		return nil
	case *message.Authenticate:
		if creds == nil {
			return &HandshakeError{Message: fmt.Sprintf("No credentials provided but server requires authentication by %s", msg.Authenticator)}
		}
		return performAuthentication(ctx, conn, msg.Authenticator, creds)
	case *message.Error:
		return &CqlError{Code: msg.Code, Text: msg.Text}
	default:
		return &HandshakeError{Message: fmt.Sprintf("did not expect %v after STARTUP", resp.Message)}
	}
}

func performAuthentication(ctx context.Context, conn *Connection, authenticatorClass string, creds *Credentials) error {
	authenticator, err := auth.Select(authenticatorClass, creds.Username, creds.Password)
	if err != nil {
		return &HandshakeError{Message: err.Error()}
	}
	token, err := authenticator.InitialResponse(authenticatorClass)
	if err != nil {
		return &HandshakeError{Message: err.Error()}
	}
	for {
		resp, err := conn.Call(ctx, frame.NewRequestFrame(0, &message.AuthResponse{Token: token}))
		if err != nil {
			return &HandshakeError{Message: fmt.Sprintf("AUTH_RESPONSE failed: %v", err)}
		}
		switch msg := resp.Message.(type) {
		case *message.AuthSuccess:
			log.Info().Msgf("%v: handshake complete, authentication successful", conn)
			return nil
		case *message.AuthChallenge:
			token, err = authenticator.EvaluateChallenge(msg.Token)
			if err != nil {
				return &HandshakeError{Message: err.Error()}
			}
			continue
		case *message.Error:
			return &CqlError{Code: msg.Code, Text: msg.Text}
		default:
			return &HandshakeError{Message: fmt.Sprintf("expected AUTH_SUCCESS or AUTH_CHALLENGE, got %v", resp.Message)}
		}
	}
}
