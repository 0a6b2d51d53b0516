package secrets

// Owner key prefixes and well-known global slots
const (
	userPrefix   = "user:"
	globalPrefix = "global:"

	// SlotFaction holds the shared faction key used by sync and leaderboards
	SlotFaction = "faction"
)

const (
	KeySize   = 32
	nonceSize = 24
)

// Error messages
const (
	ErrMsgInvalidKey    = "invalid encryption key"
	ErrMsgReadKeyFile   = "failed to read encryption key file"
	ErrMsgWriteKeyFile  = "failed to write encryption key file"
	ErrMsgGenerateKey   = "failed to generate encryption key"
	ErrMsgGenerateNonce = "failed to generate nonce"
	ErrMsgEmptySecret   = "secret value is empty"
)

// Log messages
const (
	LogMsgGeneratedKey = "Generated new encryption key"
)
