package domain

// Outcome is the terminal state of a single file in a run.
type Outcome string

const (
	OutcomeNoTranslations Outcome = "SKIPPED_NO_TRANSLATIONS"
	OutcomeAlreadyDone    Outcome = "SKIPPED_ALREADY_DONE"
	OutcomeNoAnchor       Outcome = "SKIPPED_NO_ANCHOR"
	OutcomeMissingFile    Outcome = "SKIPPED_MISSING_FILE"
	OutcomeDone           Outcome = "DONE"
	OutcomeWouldApply     Outcome = "WOULD_APPLY"
	OutcomeFailed         Outcome = "FAILED"
)

// Applied reports whether the file was (or, in dry-run mode, would be) patched.
func (o Outcome) Applied() bool {
	return o == OutcomeDone || o == OutcomeWouldApply
}

// Skipped reports whether the file was left alone without an error.
func (o Outcome) Skipped() bool {
	switch o {
	case OutcomeNoTranslations, OutcomeAlreadyDone, OutcomeNoAnchor, OutcomeMissingFile:
		return true
	}
	return false
}
