package repositories

// ArchiveRepository lists the member paths of source archives.
type ArchiveRepository interface {
	// ListMembers returns member names in archive order.
	ListMembers(path string) ([]string, error)
}
