package docstore

type store interface {
	Store
}
