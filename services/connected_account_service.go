// Copyright (C) 2026 l3montree GmbH
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

package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/monitoring"
	"github.com/l3montree-dev/threadline/shared"
	"golang.org/x/oauth2"
	"gorm.io/datatypes"
)

type connectedAccountService struct {
	repository    shared.ConnectedAccountRepository
	registry      shared.IntegrationRegistry
	oauth2Confs   map[models.Provider]*oauth2.Config
	timeNow       func() time.Time
	verifyTimeout time.Duration
}

var _ shared.ConnectedAccountService = (*connectedAccountService)(nil)

func NewConnectedAccountService(repository shared.ConnectedAccountRepository, registry shared.IntegrationRegistry) *connectedAccountService {
	return &connectedAccountService{
		repository:    repository,
		registry:      registry,
		oauth2Confs:   oauth2ConfsFromEnv(),
		timeNow:       time.Now,
		verifyTimeout: 30 * time.Second,
	}
}

// oauth2ConfsFromEnv reads <PROVIDER>_OAUTH2_CLIENT_ID, _CLIENT_SECRET and _TOKEN_URL.
// Providers with an incomplete configuration cannot refresh tokens.
func oauth2ConfsFromEnv() map[models.Provider]*oauth2.Config {
	confs := make(map[models.Provider]*oauth2.Config)
	for _, provider := range []models.Provider{models.ProviderSlack, models.ProviderFigma, models.ProviderGitHub, models.ProviderJira, models.ProviderGitLab} {
		prefix := strings.ToUpper(string(provider)) + "_OAUTH2_"
		clientID := os.Getenv(prefix + "CLIENT_ID")
		clientSecret := os.Getenv(prefix + "CLIENT_SECRET")
		tokenURL := os.Getenv(prefix + "TOKEN_URL")
		if clientID == "" && clientSecret == "" && tokenURL == "" {
			continue
		}
		if clientID == "" || clientSecret == "" || tokenURL == "" {
			slog.Warn("incomplete oauth2 configuration, token refresh disabled", "provider", provider)
			continue
		}
		confs[provider] = &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL: tokenURL,
			},
		}
	}
	return confs
}

// TokenHint returns a display safe prefix of a token.
func TokenHint(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "****"
}

func (s *connectedAccountService) Create(ctx context.Context, teamID uuid.UUID, req dtos.ConnectedAccountCreateRequest) (models.ConnectedAccount, error) {
	provider := models.Provider(req.Provider)
	if !provider.IsValid() {
		return models.ConnectedAccount{}, shared.NewValidationError("create account", fmt.Errorf("unknown provider %q", req.Provider))
	}

	scopes := req.Scopes
	if scopes == nil {
		scopes = []string{}
	}
	metadata := req.ProviderMetadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	account := models.ConnectedAccount{
		TeamID:            teamID,
		Provider:          provider,
		Label:             strings.TrimSpace(req.Label),
		ProviderAccountID: req.ProviderAccountID,
		AccessToken:       req.Token,
		AccessTokenHint:   TokenHint(req.Token),
		RefreshToken:      req.RefreshToken,
		TokenExpiresAt:    req.TokenExpiresAt,
		SigningSecret:     req.SigningSecret,
		Scopes:            datatypes.NewJSONSlice(scopes),
		ProviderMetadata:  datatypes.JSONMap(metadata),
		Status:            models.AccountStatusConnected,
	}

	if err := s.repository.Create(nil, &account); err != nil {
		return models.ConnectedAccount{}, fmt.Errorf("could not create connected account: %w", err)
	}
	slog.Info("connected account created", "teamID", teamID, "provider", provider, "accountID", account.ID)
	return account, nil
}

func (s *connectedAccountService) Verify(ctx context.Context, teamID uuid.UUID, accountID uuid.UUID) (dtos.VerificationResult, error) {
	account, err := s.Read(teamID, accountID)
	if err != nil {
		return dtos.VerificationResult{}, err
	}

	tester, ok := s.registry.ConnectionTester(account.Provider)
	if !ok {
		return dtos.VerificationResult{}, shared.NewFatalError("verify account", fmt.Errorf("no connection test for provider %s", account.Provider))
	}

	now := s.timeNow()
	if account.TokenExpiresAt != nil && now.After(*account.TokenExpiresAt) && account.RefreshToken != nil {
		refreshed, err := s.RefreshToken(ctx, account)
		if err != nil {
			msg := err.Error()
			return dtos.VerificationResult{Success: false, Status: string(models.AccountStatusExpired), Error: &msg}, nil
		}
		account = refreshed
	}

	testCtx, cancel := context.WithTimeout(ctx, s.verifyTimeout)
	defer cancel()
	testErr := tester.TestConnection(testCtx, account)

	status := models.AccountStatusConnected
	var lastError *string
	if testErr != nil {
		msg := testErr.Error()
		lastError = &msg
		if shared.IsKind(testErr, shared.ErrorKindAuth) {
			status = models.AccountStatusRevoked
		} else {
			status = models.AccountStatusError
		}
	}

	if err := s.repository.UpdateStatus(nil, account.ID, status, lastError, now); err != nil {
		return dtos.VerificationResult{}, fmt.Errorf("could not update account status: %w", err)
	}
	monitoring.AccountVerifications.WithLabelValues(string(account.Provider), string(status)).Inc()

	if testErr != nil {
		slog.Warn("connected account verification failed", "accountID", account.ID, "provider", account.Provider, "status", status, "err", testErr)
	}

	return dtos.VerificationResult{
		Success: testErr == nil,
		Status:  string(status),
		Error:   lastError,
	}, nil
}

// RefreshToken exchanges the stored refresh token for a new access token.
// An account whose token cannot be refreshed is marked expired.
func (s *connectedAccountService) RefreshToken(ctx context.Context, account models.ConnectedAccount) (models.ConnectedAccount, error) {
	conf, ok := s.oauth2Confs[account.Provider]
	if !ok || account.RefreshToken == nil || *account.RefreshToken == "" {
		err := shared.NewAuthError("refresh token", fmt.Errorf("token of %s account cannot be refreshed", account.Provider))
		s.markExpired(account, err)
		return account, err
	}

	current := &oauth2.Token{
		AccessToken:  account.AccessToken,
		RefreshToken: *account.RefreshToken,
		// an expiry in the past forces the token source to refresh
		Expiry: time.Unix(1, 0),
	}

	token, err := conf.TokenSource(ctx, current).Token()
	if err != nil {
		err = shared.NewAuthError("refresh token", err)
		s.markExpired(account, err)
		return account, err
	}

	refreshToken := account.RefreshToken
	if token.RefreshToken != "" {
		refreshToken = &token.RefreshToken
	}
	var expiresAt *time.Time
	if !token.Expiry.IsZero() {
		expiresAt = &token.Expiry
	}

	hint := TokenHint(token.AccessToken)
	if err := s.repository.UpdateTokens(nil, account.ID, token.AccessToken, hint, refreshToken, expiresAt); err != nil {
		return account, fmt.Errorf("could not persist refreshed token: %w", err)
	}
	if err := s.repository.UpdateStatus(nil, account.ID, models.AccountStatusConnected, nil, s.timeNow()); err != nil {
		return account, fmt.Errorf("could not update account status: %w", err)
	}

	account.AccessToken = token.AccessToken
	account.AccessTokenHint = hint
	account.RefreshToken = refreshToken
	account.TokenExpiresAt = expiresAt
	account.Status = models.AccountStatusConnected
	account.LastError = nil
	slog.Info("refreshed connected account token", "accountID", account.ID, "provider", account.Provider)
	return account, nil
}

func (s *connectedAccountService) markExpired(account models.ConnectedAccount, cause error) {
	msg := cause.Error()
	if err := s.repository.UpdateStatus(nil, account.ID, models.AccountStatusExpired, &msg, s.timeNow()); err != nil {
		slog.Error("could not mark account as expired", "accountID", account.ID, "err", err)
	}
	monitoring.AccountVerifications.WithLabelValues(string(account.Provider), string(models.AccountStatusExpired)).Inc()
}

func (s *connectedAccountService) Delete(teamID uuid.UUID, accountID uuid.UUID) error {
	if _, err := s.Read(teamID, accountID); err != nil {
		return err
	}
	return s.repository.Delete(nil, accountID)
}

func (s *connectedAccountService) List(teamID uuid.UUID) ([]models.ConnectedAccount, error) {
	return s.repository.ListByTeam(teamID)
}

func (s *connectedAccountService) Read(teamID uuid.UUID, accountID uuid.UUID) (models.ConnectedAccount, error) {
	account, err := s.repository.ReadByTeam(teamID, accountID)
	if err != nil {
		return models.ConnectedAccount{}, notFoundOr("read account", err)
	}
	return account, nil
}

func (s *connectedAccountService) ReadForWebhook(accountID uuid.UUID) (models.ConnectedAccount, error) {
	account, err := s.repository.Read(accountID)
	if err != nil {
		return models.ConnectedAccount{}, notFoundOr("read account", err)
	}
	return account, nil
}

func (s *connectedAccountService) All() ([]models.ConnectedAccount, error) {
	return s.repository.All()
}
