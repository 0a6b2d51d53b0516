package sqlite

// Store operation names used in domain.StoreError
const (
	opApplyAttack  = "apply attack"
	opGetAttack    = "get attack"
	opGetMeta      = "get meta"
	opSetMeta      = "set meta"
	opAdvanceMeta  = "advance meta"
	opLowerMeta    = "lower meta"
	opGetTotals    = "get actor totals"
	opTopBy        = "top by"
	opTotalMugged  = "total mugged"
	opPing         = "ping"
	opGetSecret    = "get secret"
	opPutSecret    = "put secret"
	opDeleteSecret = "delete secret"
	opBeginTx      = "begin transaction"
	opCommitTx     = "commit transaction"
)

const (
	ErrMsgUnknownColumn    = "unknown leaderboard column"
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
