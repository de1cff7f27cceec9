// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package middlewares

import (
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/threadline/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/yaronf/httpsign"
)

const requestSignatureName = "threadline"

var signedRequestFields = httpsign.Headers("@method", "@path", "content-digest")

// hmac keys need 64 bytes, the api token is stretched to that length
func signatureKey(token string) []byte {
	sum := sha512.Sum512([]byte(token))
	return sum[:]
}

// SignRequest adds an HTTP message signature keyed with the api token to req.
// Signed requests never send the token itself.
func SignRequest(token string, req *http.Request) error {
	if req.Body == nil {
		req.Body = http.NoBody
	}
	digest, err := httpsign.GenerateContentDigestHeader(&req.Body, []string{httpsign.DigestSha256})
	if err != nil {
		return fmt.Errorf("could not generate content digest header: %w", err)
	}
	req.Header.Set("Content-Digest", digest)

	signer, err := httpsign.NewHMACSHA256Signer(signatureKey(token), httpsign.NewSignConfig(), signedRequestFields)
	if err != nil {
		return err
	}
	signatureInput, signature, err := httpsign.SignRequest(requestSignatureName, *signer, req)
	if err != nil {
		return fmt.Errorf("could not sign request: %w", err)
	}
	req.Header.Set("Signature-Input", signatureInput)
	req.Header.Set("Signature", signature)
	return nil
}

func verifySignedRequest(token string, req *http.Request) error {
	verifier, err := httpsign.NewHMACSHA256Verifier(signatureKey(token), httpsign.NewVerifyConfig(), signedRequestFields)
	if err != nil {
		return err
	}
	if err := httpsign.VerifyRequest(requestSignatureName, *verifier, req); err != nil {
		return err
	}
	if req.Body == nil {
		req.Body = http.NoBody
	}
	return httpsign.ValidateContentDigestHeader(req.Header.Values("Content-Digest"), &req.Body, []string{httpsign.DigestSha256})
}

// APITokenAuth guards the team API with the api token. Clients either send it
// as bearer token or sign the request with it.
// Without a configured token every request is rejected.
func APITokenAuth(token string) shared.MiddlewareFunc {
	if token == "" {
		slog.Warn("API_TOKEN is not set, the team api rejects every request")
	}
	keyAuth := middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:Authorization",
		AuthScheme: "Bearer",
		Validator: func(key string, ctx echo.Context) (bool, error) {
			if token == "" {
				return false, nil
			}
			return subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1, nil
		},
		ErrorHandler: func(err error, ctx echo.Context) error {
			return echo.NewHTTPError(401, "invalid api token").WithInternal(err)
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		bearer := keyAuth(next)
		return func(ctx echo.Context) error {
			if ctx.Request().Header.Get("Signature") == "" {
				return bearer(ctx)
			}
			if token == "" {
				return echo.NewHTTPError(401, "invalid request signature")
			}
			if err := verifySignedRequest(token, ctx.Request()); err != nil {
				return echo.NewHTTPError(401, "invalid request signature").WithInternal(err)
			}
			return next(ctx)
		}
	}
}
