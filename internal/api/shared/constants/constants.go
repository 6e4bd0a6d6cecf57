package constants

const (
	MAX_PAGE_SIZE           = 100
	DEFAULT_OFFSET          = 0
	DEFAULT_PACKETS_LIMIT   = 20
	DEFAULT_TRANSFERS_LIMIT = 20
	DEFAULT_PURCHASES_LIMIT = 20
	DEFAULT_ACTORS_LIMIT    = 50
	MAX_PACKETS_PER_REQUEST = 50
)
