package upload

import "github.com/nikmy/menuseed/internal/docstore"

type sessionOpener interface {
	Opener
}

type documentStore interface {
	docstore.Store
}
