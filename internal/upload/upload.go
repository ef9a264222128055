// Package upload stores one outlet menu in a document store.
package upload

import (
	"context"
	"time"

	"github.com/nikmy/menuseed/internal/credentials"
	"github.com/nikmy/menuseed/internal/docstore"
	"github.com/nikmy/menuseed/internal/menu"
	"github.com/nikmy/menuseed/pkg/errors"
	"github.com/nikmy/menuseed/pkg/logger"
)

const DefaultCollection = "outlets"

// Opener hands out the store of an already constructed session.
type Opener interface {
	Open(ctx context.Context, creds credentials.Credentials) (docstore.Store, error)
}

type Options struct {
	CredentialsPath string
	MenuPath        string

	// Collection defaults to DefaultCollection.
	Collection string
	OnConflict ConflictPolicy

	// Timeout bounds everything after the credentials are read.
	// Zero means no deadline.
	Timeout time.Duration
}

func (o Options) collection() string {
	if o.Collection == "" {
		return DefaultCollection
	}
	return o.Collection
}

func New(log logger.Logger, session Opener) *Uploader {
	return &Uploader{
		log:     log.With("upload"),
		session: session,
	}
}

type Uploader struct {
	log     logger.Logger
	session Opener
}

// Run loads credentials, opens the session, loads the menu and writes it.
// Each step runs only if the previous one succeeded.
func (u *Uploader) Run(ctx context.Context, opts Options) Result {
	res := Result{Collection: opts.collection()}

	u.log.Infof("loading credentials from %s", opts.CredentialsPath)
	creds, err := credentials.Load(opts.CredentialsPath)
	if err != nil {
		return u.fail(res, fileOutcome(err, MissingCredentials, InvalidCredentials), err)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	store, err := u.session.Open(ctx, creds)
	if err != nil {
		return u.fail(res, SessionFailed, err)
	}

	u.log.Infof("loading menu from %s", opts.MenuPath)
	doc, err := menu.Load(opts.MenuPath)
	if err != nil {
		return u.fail(res, fileOutcome(err, MissingMenu, InvalidMenu), err)
	}

	res.OutletID, err = doc.OutletID()
	if err != nil {
		return u.fail(res, InvalidMenu, err)
	}

	if opts.OnConflict == Reject {
		err = checkConflict(ctx, store, res.Collection, res.OutletID, doc)
		if errors.Is(err, ErrConflict) {
			return u.fail(res, Conflict, err)
		}
		if err != nil {
			return u.fail(res, UploadFailed, err)
		}
	}

	err = Upload(ctx, store, res.Collection, res.OutletID, doc)
	if err != nil {
		return u.fail(res, UploadFailed, err)
	}

	u.log.Infof("menu uploaded to %s/%s", res.Collection, res.OutletID)
	return res.with(Uploaded, nil)
}

func (u *Uploader) fail(res Result, o Outcome, err error) Result {
	u.log.Errorf("%s: %s", o, err)
	return res.with(o, err)
}

// Upload replaces the document at collection/key with doc.
func Upload(ctx context.Context, store docstore.Store, collection string, key string, doc menu.Document) error {
	err := store.Set(ctx, collection, key, doc)
	return errors.WrapFailf(err, "upload %s/%s", collection, key)
}

func checkConflict(ctx context.Context, store docstore.Store, collection string, key string, doc menu.Document) error {
	existing, err := store.Get(ctx, collection, key)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		return errors.WrapFailf(err, "read %s/%s", collection, key)
	}

	incoming, _ := doc.Name()
	stored, _ := menu.Document(existing).Name()
	if stored != incoming {
		return errors.Wrapf(ErrConflict, "%s/%s holds %q, refusing to replace it with %q", collection, key, stored, incoming)
	}

	return nil
}
