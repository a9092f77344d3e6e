package ports

import "context"

// EntryFunction is a mutating ledger operation ready for signing and
// submission. FunctionID is fully qualified
// ("<module_address>::<module_name>::<fn>"); Args are the positional entry
// function arguments in wire encoding (numbers as decimal strings).
type EntryFunction struct {
	FunctionID string   `json:"function"`
	TypeArgs   []string `json:"type_arguments"`
	Args       []any    `json:"arguments"`
}

// Receipt identifies a submitted but not yet finalized operation.
type Receipt struct {
	Hash string `json:"hash"`
}

// LedgerGateway is the contract around the external ledger.
//
// Query is read-only and side-effect-free. Submit hands the operation to the
// externally connected signing identity and returns once the ledger has
// accepted it into the mempool; AwaitFinality blocks until the operation is
// confirmed, returning an error if the ledger rejected it. Neither Submit
// nor AwaitFinality is retried by callers: a mutating operation is attempted
// at most once per user request.
type LedgerGateway interface {
	Query(ctx context.Context, functionID string, typeArgs []string, args []any) ([]any, error)
	Submit(ctx context.Context, sender Identity, op EntryFunction) (Receipt, error)
	AwaitFinality(ctx context.Context, hash string) error
}

// Identity is the wallet session's account, supplied explicitly with every
// mutating request. The zero value means "not connected".
type Identity struct {
	Address string
}

// Connected reports whether a signing identity is present.
func (i Identity) Connected() bool {
	return i.Address != ""
}
