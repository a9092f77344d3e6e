package integration

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/heavensaji/fundtos/internal/core/ports"
)

// fakeLedger is an in-memory stand-in for the fullnode and signing bridge.
// It executes the Fundraising module's entry functions against local state so
// the integration tests exercise the real HTTP layer, middleware, services,
// and orchestration end-to-end without a chain.
type fakeLedger struct {
	mu        sync.Mutex
	campaigns []fakeCampaign
	nextID    int64
	nextTx    int64
	outcomes  map[string]error // tx hash -> finality outcome

	failQuery    error              // when set, Query fails
	failSubmit   error              // when set, Submit fails
	beforeSubmit func(fnName string) // called outside the lock, for concurrency tests
}

type fakeCampaign struct {
	id       int64
	owner    string
	title    string
	desc     string
	link     string
	goal     int64
	balance  int64
	active   bool
	category int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{outcomes: make(map[string]error)}
}

func fnName(functionID string) string {
	parts := strings.Split(functionID, "::")
	return parts[len(parts)-1]
}

// Query implements ports.LedgerGateway.
func (l *fakeLedger) Query(_ context.Context, functionID string, _ []string, args []any) ([]any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failQuery != nil {
		return nil, l.failQuery
	}

	switch fnName(functionID) {
	case "get_all_campaign_details":
		return []any{l.encodeCampaigns("")}, nil
	case "get_campaigns":
		if len(args) != 1 {
			return nil, fmt.Errorf("get_campaigns expects 1 argument")
		}
		owner, _ := args[0].(string)
		return []any{l.encodeCampaigns(owner)}, nil
	default:
		return nil, fmt.Errorf("unknown view function %s", functionID)
	}
}

// encodeCampaigns renders local state in the node's wire encoding: numeric
// fields as base-10 strings. Caller must hold l.mu.
func (l *fakeLedger) encodeCampaigns(owner string) []any {
	out := make([]any, 0, len(l.campaigns))
	for _, c := range l.campaigns {
		if owner != "" && c.owner != owner {
			continue
		}
		out = append(out, map[string]any{
			"id":            strconv.FormatInt(c.id, 10),
			"owner":         c.owner,
			"title":         c.title,
			"description":   c.desc,
			"link":          c.link,
			"goal":          strconv.FormatInt(c.goal, 10),
			"balance":       strconv.FormatInt(c.balance, 10),
			"is_active":     c.active,
			"campaign_type": strconv.Itoa(c.category),
		})
	}
	return out
}

// Submit implements ports.LedgerGateway. The entry function executes
// immediately; a rejected execution is reported through AwaitFinality, the
// way a committed-but-aborted transaction surfaces on a real node.
func (l *fakeLedger) Submit(_ context.Context, sender ports.Identity, op ports.EntryFunction) (ports.Receipt, error) {
	name := fnName(op.FunctionID)
	if hook := l.hook(); hook != nil {
		hook(name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failSubmit != nil {
		return ports.Receipt{}, l.failSubmit
	}

	l.nextTx++
	hash := fmt.Sprintf("0xtx%d", l.nextTx)
	l.outcomes[hash] = l.execute(sender, name, op.Args)
	return ports.Receipt{Hash: hash}, nil
}

// execute applies one entry function. Caller must hold l.mu.
func (l *fakeLedger) execute(sender ports.Identity, name string, args []any) error {
	switch name {
	case "create_campaign":
		if len(args) != 5 {
			return fmt.Errorf("create_campaign expects 5 arguments")
		}
		goal, err := argInt(args[3])
		if err != nil {
			return err
		}
		category, err := argInt(args[4])
		if err != nil {
			return err
		}
		l.campaigns = append(l.campaigns, fakeCampaign{
			id:       l.nextID,
			owner:    sender.Address,
			title:    args[0].(string),
			desc:     args[1].(string),
			link:     args[2].(string),
			goal:     goal,
			active:   true,
			category: int(category),
		})
		l.nextID++
		return nil

	case "donate":
		if len(args) != 3 {
			return fmt.Errorf("donate expects 3 arguments")
		}
		id, err := argInt(args[1])
		if err != nil {
			return err
		}
		amount, err := argInt(args[2])
		if err != nil {
			return err
		}
		c := l.find(id)
		if c == nil {
			return fmt.Errorf("Move abort: ECAMPAIGN_NOT_FOUND")
		}
		if !c.active {
			return fmt.Errorf("Move abort: ECAMPAIGN_CLOSED")
		}
		c.balance += amount
		return nil

	case "withdraw_funds":
		if len(args) != 2 {
			return fmt.Errorf("withdraw_funds expects 2 arguments")
		}
		id, err := argInt(args[0])
		if err != nil {
			return err
		}
		amount, err := argInt(args[1])
		if err != nil {
			return err
		}
		c := l.find(id)
		if c == nil {
			return fmt.Errorf("Move abort: ECAMPAIGN_NOT_FOUND")
		}
		if c.owner != sender.Address {
			return fmt.Errorf("Move abort: ENOT_OWNER")
		}
		if amount > c.balance {
			return fmt.Errorf("Move abort: EINSUFFICIENT_BALANCE")
		}
		c.balance -= amount
		return nil

	case "close_campaign":
		if len(args) != 1 {
			return fmt.Errorf("close_campaign expects 1 argument")
		}
		id, err := argInt(args[0])
		if err != nil {
			return err
		}
		c := l.find(id)
		if c == nil {
			return fmt.Errorf("Move abort: ECAMPAIGN_NOT_FOUND")
		}
		if c.owner != sender.Address {
			return fmt.Errorf("Move abort: ENOT_OWNER")
		}
		c.active = false
		return nil

	default:
		return fmt.Errorf("unknown entry function %s", name)
	}
}

// AwaitFinality implements ports.LedgerGateway.
func (l *fakeLedger) AwaitFinality(_ context.Context, hash string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	outcome, ok := l.outcomes[hash]
	if !ok {
		return fmt.Errorf("unknown transaction %s", hash)
	}
	return outcome
}

// Ping implements ports.HealthChecker.
func (l *fakeLedger) Ping(context.Context) error { return nil }

// Name implements ports.HealthChecker.
func (l *fakeLedger) Name() string { return "ledger" }

func (l *fakeLedger) setFailQuery(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failQuery = err
}

func (l *fakeLedger) setFailSubmit(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failSubmit = err
}

func (l *fakeLedger) setBeforeSubmit(hook func(fnName string)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.beforeSubmit = hook
}

func (l *fakeLedger) hook() func(string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.beforeSubmit
}

func (l *fakeLedger) find(id int64) *fakeCampaign {
	for i := range l.campaigns {
		if l.campaigns[i].id == id {
			return &l.campaigns[i]
		}
	}
	return nil
}

func (l *fakeLedger) balance(id int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c := l.find(id); c != nil {
		return c.balance
	}
	return -1
}

func argInt(arg any) (int64, error) {
	s, ok := arg.(string)
	if !ok {
		return 0, fmt.Errorf("argument %v is not a string-encoded integer", arg)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %q: %w", s, err)
	}
	return n, nil
}
