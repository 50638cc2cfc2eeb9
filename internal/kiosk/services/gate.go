package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/cryptox"
	"github.com/dmitrijs2005/hrakiosk/internal/dbx"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/repositories/metadata"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/store"
	"github.com/dmitrijs2005/hrakiosk/internal/logging"
)

const (
	metaKeyPINSalt     = "admin_pin_salt"
	metaKeyPINVerifier = "admin_pin_verifier"
)

// AdminGate protects the review dashboard behind a local PIN. Only an
// Argon2id verifier and its salt are stored; the PIN itself never touches
// the database. The gate is open by default until a PIN is configured.
type AdminGate struct {
	store    *store.Store
	log      logging.Logger
	loggedIn bool
}

func NewAdminGate(s *store.Store, log logging.Logger) *AdminGate {
	return &AdminGate{store: s, log: log}
}

// SetPIN derives a fresh salt and verifier and stores both atomically,
// replacing any previous PIN.
func (g *AdminGate) SetPIN(ctx context.Context, pin []byte) error {
	if len(pin) == 0 {
		return fmt.Errorf("%w: pin must not be empty", common.ErrorEmptyInput)
	}
	salt := cryptox.MakeSalt()
	verifier := cryptox.DeriveVerifier(pin, salt)

	err := dbx.WithTx(ctx, g.store.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metaKeyPINSalt, salt); err != nil {
			return err
		}
		return repo.Set(ctx, metaKeyPINVerifier, verifier)
	})
	if err != nil {
		return fmt.Errorf("failed to store pin verifier: %w", err)
	}
	g.log.Info(ctx, "admin pin configured")
	return nil
}

// ClearPIN removes the stored salt and verifier, leaving the gate open.
func (g *AdminGate) ClearPIN(ctx context.Context) error {
	err := dbx.WithTx(ctx, g.store.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, metaKeyPINSalt); err != nil {
			return err
		}
		return repo.Delete(ctx, metaKeyPINVerifier)
	})
	if err != nil {
		return fmt.Errorf("failed to clear pin verifier: %w", err)
	}
	g.loggedIn = false
	g.log.Info(ctx, "admin pin cleared")
	return nil
}

// Configured reports whether a PIN has been set.
func (g *AdminGate) Configured(ctx context.Context) (bool, error) {
	verifier, err := g.store.Metadata.Get(ctx, metaKeyPINVerifier)
	if err != nil {
		return false, err
	}
	return verifier != nil, nil
}

// Login checks a candidate PIN against the stored verifier. A wrong PIN
// fails with common.ErrorUnauthorized; an unconfigured gate fails with
// common.ErrorNotFound.
func (g *AdminGate) Login(ctx context.Context, pin []byte) error {
	salt, err := g.store.Metadata.Get(ctx, metaKeyPINSalt)
	if err != nil {
		return err
	}
	verifier, err := g.store.Metadata.Get(ctx, metaKeyPINVerifier)
	if err != nil {
		return err
	}
	if salt == nil || verifier == nil {
		return fmt.Errorf("%w: no admin pin configured", common.ErrorNotFound)
	}

	if !cryptox.VerifyPIN(pin, salt, verifier) {
		g.log.Warn(ctx, "admin login rejected")
		return fmt.Errorf("%w: wrong pin", common.ErrorUnauthorized)
	}
	g.loggedIn = true
	g.log.Info(ctx, "admin login accepted")
	return nil
}

func (g *AdminGate) LoggedIn() bool {
	return g.loggedIn
}

func (g *AdminGate) Logout() {
	g.loggedIn = false
}
