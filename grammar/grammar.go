package grammar

// Definition is the MDL grammar of record in PEG notation. The hand-written
// parser in this package implements exactly these rules; the text is embedded
// so the format contract ships with the binary instead of a runtime file.
const Definition = `
Document        <- (BlankLine / Comment / Occurrence)* EOF
Comment         <- "#" (!EOL .)* EOL

Occurrence      <- Instructions / Example / Begin
                 / Context / Waiting / Resuming / Working / Action
                 / Identification / Thought / Motivation / Observation
                 / CritiqueRequest / Critique / RevisionRequest
                 / Revision / Rejected / Chosen / Self / Participant

Instructions    <- "Instructions:" SP says_string EOL
Example         <- "Example:" SP title " - " "'''" example "'''" EOL
Begin           <- "Begin." EOL
Context         <- "Context:" SP fenced EOL
Waiting         <- "Waiting:" SP fenced EOL
Resuming        <- "Resuming:" SP fenced EOL
Working         <- "Working:" SP fenced EOL
Action          <- "Action:" SP fenced EOL
Identification  <- "Identification:" SP kind " is called " q_string "." EOL
Thought         <- "Thought:" SP says_string EOL
Motivation      <- "Motivation:" SP? rest EOL
Observation     <- "Observation:" SP? rest EOL
CritiqueRequest <- "Critique Request:" SP? rest EOL
Critique        <- "Critique:" SP? rest EOL
RevisionRequest <- "Revision Request:" SP? rest EOL
Revision        <- "Revision:" SP emotion? says_string EOL
Rejected        <- "Rejected:" SP emotion? says_string EOL
Chosen          <- "Chosen:" SP emotion? says_string EOL
Self            <- "Self:" SP emotion? says_string EOL
Participant     <- participant ":" SP emotion? says_string EOL

emotion         <- "(" emotion_content ")" SP
emotion_content <- (!")" !EOL .)*
says_string     <- tq_string / q_string
q_string        <- '"' q_content '"'
q_content       <- ("\\" . / !'"' !EOL .)*
tq_string       <- '"""' tq_content '"""'
tq_content      <- (!('"""' !'"') .)*
fenced          <- "` + "```" + `" fence "` + "```" + `"
fence           <- (!"` + "```" + `" .)*
title           <- (!" - '''" !EOL .)*
example         <- (!"'''" .)*
kind            <- (!" is called " !EOL .)*
rest            <- (!EOL .)*
participant     <- [A-Za-z] [A-Za-z0-9_. -]*
SP              <- " "
BlankLine       <- [ \t]* EOL
EOL             <- "\n" / EOF
`

// Rule names of the occurrence alternatives, in match priority order.
// Ordered choice is load-bearing: keyword rules shadow the Participant
// catch-all, and longer keywords ("Critique Request:") come before their
// prefixes ("Critique:").
const (
	RuleComment         = "Comment"
	RuleInstructions    = "Instructions"
	RuleExample         = "Example"
	RuleBegin           = "Begin"
	RuleContext         = "Context"
	RuleWaiting         = "Waiting"
	RuleResuming        = "Resuming"
	RuleWorking         = "Working"
	RuleAction          = "Action"
	RuleIdentification  = "Identification"
	RuleThought         = "Thought"
	RuleMotivation      = "Motivation"
	RuleObservation     = "Observation"
	RuleCritiqueRequest = "CritiqueRequest"
	RuleCritique        = "Critique"
	RuleRevisionRequest = "RevisionRequest"
	RuleRevision        = "Revision"
	RuleRejected        = "Rejected"
	RuleChosen          = "Chosen"
	RuleSelf            = "Self"
	RuleParticipant     = "Participant"
)

// Capture node names produced inside occurrence nodes.
const (
	CaptureEmotion     = "emotion"
	CaptureQContent    = "q_content"
	CaptureTQContent   = "tq_content"
	CaptureFence       = "fence"
	CaptureTitle       = "title"
	CaptureExample     = "example"
	CaptureKind        = "kind"
	CaptureName        = "name"
	CaptureRest        = "rest"
	CaptureParticipant = "participant"
)
