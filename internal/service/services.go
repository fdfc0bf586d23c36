package service

import (
	"github.com/simonxoxoo/vinyl-app/internal/config"
	"github.com/simonxoxoo/vinyl-app/internal/crypto"
	"github.com/simonxoxoo/vinyl-app/internal/logger"
	"github.com/simonxoxoo/vinyl-app/internal/store"
	"github.com/simonxoxoo/vinyl-app/internal/utils"
	"github.com/simonxoxoo/vinyl-app/internal/validators"
)

// Services bundles the application's service layer.
type Services struct {
	AuthService     AuthService
	CatalogService  CatalogService
	TransferService TransferService

	store     store.CatalogStore
	keychain  crypto.KeyChainService
	passwords validators.CredentialValidator
	logger    *logger.Logger
}

func NewServices(storages *store.Storages, cfg config.ClientApp, logger *logger.Logger) *Services {
	keychain := crypto.NewKeyChainService()
	passwords := validators.NewPasswordValidator()

	return &Services{
		AuthService:     NewAuthService(storages.Catalog, keychain, passwords, cfg, logger),
		CatalogService:  NewCatalogService(storages.Catalog, utils.NewUUIDGenerator(), logger),
		TransferService: NewTransferService(storages.Catalog, logger),
		store:           storages.Catalog,
		keychain:        keychain,
		passwords:       passwords,
		logger:          logger,
	}
}

// NewPasswordReset starts a fresh password-reset flow sharing the services'
// store and credential machinery. Each call returns an independent,
// single-use flow.
func (s *Services) NewPasswordReset() *PasswordResetFlow {
	return NewPasswordResetFlow(s.store, s.keychain, s.passwords, s.logger)
}
