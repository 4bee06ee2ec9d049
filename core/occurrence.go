package core

// Kind identifies one occurrence variant. The set is closed: the parser, the
// dict codec and the renderer each dispatch over it exhaustively, so adding a
// kind means adding a variant type and a match arm in each.
type Kind string

// The closed set of occurrence kinds.
const (
	KindInstructions    Kind = "Instructions"
	KindExample         Kind = "Example"
	KindBegin           Kind = "Begin"
	KindContext         Kind = "Context"
	KindSelf            Kind = "Self"
	KindParticipant     Kind = "Participant"
	KindMotivation      Kind = "Motivation"
	KindObservation     Kind = "Observation"
	KindThought         Kind = "Thought"
	KindIdentification  Kind = "Identification"
	KindWaiting         Kind = "Waiting"
	KindResuming        Kind = "Resuming"
	KindWorking         Kind = "Working"
	KindAction          Kind = "Action"
	KindRejected        Kind = "Rejected"
	KindCritique        Kind = "Critique"
	KindCritiqueRequest Kind = "CritiqueRequest"
	KindRevisionRequest Kind = "RevisionRequest"
	KindRevision        Kind = "Revision"
	KindChosen          Kind = "Chosen"
)

// Occurrence is one typed record of a single happening within a Moment.
// Concrete variants implement the unexported marker method, making the set
// closed. Every variant has a canonical text rendering (String) and a
// canonical dict rendering (Dict); content is never null — absent sub-fields
// are empty strings or empty mappings, never absent keys.
type Occurrence interface {
	Kind() Kind
	String() string
	Dict() map[string]any
	isOccurrence()
}

// Instructions are developer-authored role constraints the agent must abide by.
type Instructions struct{ Text string }

func (Instructions) Kind() Kind    { return KindInstructions }
func (Instructions) isOccurrence() {}

// Example is an illustrative transcript with a title.
type Example struct{ Title, Example string }

func (Example) Kind() Kind    { return KindExample }
func (Example) isOccurrence() {}

// Begin is the sentinel ending the system/header section of a moment.
type Begin struct{}

func (Begin) Kind() Kind    { return KindBegin }
func (Begin) isOccurrence() {}

// Context carries arbitrary injected key-values, rendered as a fenced YAML block.
type Context struct{ Values map[string]any }

func (Context) Kind() Kind    { return KindContext }
func (Context) isOccurrence() {}

// Self is the agent's own utterance, with an optional emotion.
type Self struct{ Emotion, Says string }

func (Self) Kind() Kind    { return KindSelf }
func (Self) isOccurrence() {}

// Participant is a third-party utterance attributed by name.
type Participant struct{ Name, Emotion, Says string }

func (Participant) Kind() Kind    { return KindParticipant }
func (Participant) isOccurrence() {}

// Motivation states a goal of the agent.
type Motivation struct{ Text string }

func (Motivation) Kind() Kind    { return KindMotivation }
func (Motivation) isOccurrence() {}

// Observation records something the agent noticed about the world or the users.
type Observation struct{ Text string }

func (Observation) Kind() Kind    { return KindObservation }
func (Observation) isOccurrence() {}

// Thought is internal reasoning, never shown to participants.
type Thought struct{ Text string }

func (Thought) Kind() Kind    { return KindThought }
func (Thought) isOccurrence() {}

// Identification binds a name to a participant. Role is the wire "kind"
// sub-field (e.g. "human" or "agent").
type Identification struct{ Role, Name string }

func (Identification) Kind() Kind    { return KindIdentification }
func (Identification) isOccurrence() {}

// Waiting lists the keys the agent is blocked on until a matching Resuming.
type Waiting struct{ Keys map[string]any }

func (Waiting) Kind() Kind    { return KindWaiting }
func (Waiting) isOccurrence() {}

// Resuming lists the satisfied keys that end a wait.
type Resuming struct{ Keys map[string]any }

func (Resuming) Kind() Kind    { return KindResuming }
func (Resuming) isOccurrence() {}

// Working describes a long-running task the agent is busy with.
type Working struct{ Task map[string]any }

func (Working) Kind() Kind    { return KindWorking }
func (Working) isOccurrence() {}

// Action is an external call the agent requests from the underlying system.
type Action struct{ Call map[string]any }

func (Action) Kind() Kind    { return KindAction }
func (Action) isOccurrence() {}

// Rejected is an utterance rejected during preference annotation.
type Rejected struct{ Emotion, Says string }

func (Rejected) Kind() Kind    { return KindRejected }
func (Rejected) isOccurrence() {}

// Critique is the critique produced by a reviewing agent.
type Critique struct{ Text string }

func (Critique) Kind() Kind    { return KindCritique }
func (Critique) isOccurrence() {}

// CritiqueRequest asks a reviewing agent for a critique.
type CritiqueRequest struct{ Text string }

func (CritiqueRequest) Kind() Kind    { return KindCritiqueRequest }
func (CritiqueRequest) isOccurrence() {}

// RevisionRequest asks a reviewing agent for a revision.
type RevisionRequest struct{ Text string }

func (RevisionRequest) Kind() Kind    { return KindRevisionRequest }
func (RevisionRequest) isOccurrence() {}

// Revision is the revised utterance produced by a reviewing agent.
type Revision struct{ Emotion, Says string }

func (Revision) Kind() Kind    { return KindRevision }
func (Revision) isOccurrence() {}

// Chosen is the utterance selected during preference annotation.
type Chosen struct{ Emotion, Says string }

func (Chosen) Kind() Kind    { return KindChosen }
func (Chosen) isOccurrence() {}
