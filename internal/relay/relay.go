// ABOUTME: Relay protocol model: multi-recipient information-gathering
// ABOUTME: conversations with per-thread state, redirects, and completion modes.

package relay

// ThreadStatus is one recipient thread's lifecycle state. A redirected
// thread is terminal; the redirect spawns a fresh pending thread for the
// target recipient.
type ThreadStatus string

const (
	ThreadPending    ThreadStatus = "pending"
	ThreadActive     ThreadStatus = "active"
	ThreadComplete   ThreadStatus = "complete"
	ThreadDeclined   ThreadStatus = "declined"
	ThreadRedirected ThreadStatus = "redirected"
	ThreadExpired    ThreadStatus = "expired"
)

// Terminal reports whether a status ends the thread.
func (s ThreadStatus) Terminal() bool {
	switch s {
	case ThreadComplete, ThreadDeclined, ThreadRedirected, ThreadExpired:
		return true
	}
	return false
}

// CompletionMode decides when the relay as a whole counts as complete.
type CompletionMode string

const (
	CompleteAll      CompletionMode = "all"
	CompleteAny      CompletionMode = "any"
	CompleteMajority CompletionMode = "majority"
)

// Visibility controls whether recipients can see each other's progress.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityVisible Visibility = "visible"
)

// Mission is what the relay is trying to find out or accomplish.
type Mission struct {
	Objective       string   `json:"objective"`
	Context         string   `json:"context,omitempty"`
	SuccessCriteria string   `json:"success_criteria,omitempty"`
	Questions       []string `json:"questions,omitempty"`
}

// RedirectHop records one hand-off in a thread's history. The backing store
// keeps the chain newest-first.
type RedirectHop struct {
	FromName string `json:"from_name"`
	ToName   string `json:"to_name"`
	Reason   string `json:"reason"`
	Summary  string `json:"summary,omitempty"`
	At       string `json:"at,omitempty"`
}

// Insight is one piece of information captured during a thread.
type Insight struct {
	Content string `json:"content"`
	Source  string `json:"source,omitempty"`
}

// Message is one turn in a thread's conversation log.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Thread is one recipient's sub-conversation within a relay.
type Thread struct {
	ID            string        `json:"id"`
	RecipientName string        `json:"recipient_name"`
	RecipientID   string        `json:"recipient_id,omitempty"`
	Status        ThreadStatus  `json:"status"`
	Insights      []Insight     `json:"insights,omitempty"`
	OpenQuestions []string      `json:"open_questions,omitempty"`
	RedirectChain []RedirectHop `json:"redirect_chain,omitempty"`
	ThreadSummary string        `json:"thread_summary,omitempty"`
	Conversation  []Message     `json:"conversation,omitempty"`
	ExpiresAt     string        `json:"expires_at,omitempty"`
}

// ContextUpdate is an owner-appended note recipients see on later turns.
type ContextUpdate struct {
	Note string `json:"note"`
	At   string `json:"at,omitempty"`
}

// Relay is the parent entity, received fully hydrated from external storage.
// The proxy never writes it back; it only emits instructions for the
// tool-execution layer to persist.
type Relay struct {
	ID               string          `json:"id"`
	Status           string          `json:"status,omitempty"`
	Mission          *Mission        `json:"mission,omitempty"`
	Threads          []Thread        `json:"threads,omitempty"`
	ThreadVisibility Visibility      `json:"thread_visibility,omitempty"`
	ThreadMode       string          `json:"thread_mode,omitempty"`
	CompletionMode   CompletionMode  `json:"completion_mode,omitempty"`
	ContextUpdates   []ContextUpdate `json:"context_updates,omitempty"`
	OwnerName        string          `json:"owner_name,omitempty"`

	// Thread is the current recipient's thread, sent inline by the client
	// for recipient-facing sessions. MyThreadID is the older form: an id
	// pointing into Threads. Tags match the client's payload.
	Thread     *Thread `json:"thread,omitempty"`
	MyThreadID string  `json:"_my_thread_id,omitempty"`

	// OwnerMode marks a session where the relay's creator is the one
	// conversing, not a recipient. Tag matches the client's flag.
	OwnerMode bool `json:"_ownerMode,omitempty"`

	// Legacy fields from before missions and redirect chains existed.
	Objective string   `json:"objective,omitempty"`
	Journey   []string `json:"journey,omitempty"`
}

// CurrentThread resolves the thread this session speaks for: the inline
// thread when present, otherwise the Threads entry matching MyThreadID.
func (r *Relay) CurrentThread() *Thread {
	if r == nil {
		return nil
	}
	if r.Thread != nil {
		return r.Thread
	}
	if r.MyThreadID != "" {
		for i := range r.Threads {
			if r.Threads[i].ID == r.MyThreadID {
				return &r.Threads[i]
			}
		}
	}
	return nil
}

// ObjectiveText returns the mission objective, falling back to the legacy
// top-level field.
func (r *Relay) ObjectiveText() string {
	if r.Mission != nil && r.Mission.Objective != "" {
		return r.Mission.Objective
	}
	return r.Objective
}

// CompletedThreads counts threads in the complete state.
func (r *Relay) CompletedThreads() int {
	n := 0
	for _, t := range r.Threads {
		if t.Status == ThreadComplete {
			n++
		}
	}
	return n
}

// Resolved reports whether the relay is complete under its completion mode.
// "all" requires every thread terminal-complete, "any" completes on the
// first complete thread, "majority" on more than half.
func (r *Relay) Resolved() bool {
	total := len(r.Threads)
	if total == 0 {
		return false
	}
	done := r.CompletedThreads()

	switch r.CompletionMode {
	case CompleteAny:
		return done >= 1
	case CompleteMajority:
		return done*2 > total
	default: // "all" and unset
		return done == total
	}
}

// ShowVisibleThreads reports whether other recipients' progress may be
// injected into a recipient-facing prompt: only when the relay is in visible
// mode and there is more than one thread. Single-recipient relays never get
// this block regardless of the visibility setting.
func (r *Relay) ShowVisibleThreads() bool {
	return r.ThreadVisibility == VisibilityVisible && len(r.Threads) > 1
}
