package memo

// ReasonClass is the policy category a memo's reason text maps to. The
// category selects which approval matrix applies.
type ReasonClass string

const (
	ReasonPromotional ReasonClass = "Promotional"
	ReasonContract    ReasonClass = "Contract"
	ReasonOther       ReasonClass = "Other"
)

// MatrixKey returns the lower-case key the matrix set is indexed by
func (rc ReasonClass) MatrixKey() string {
	switch rc {
	case ReasonPromotional:
		return "promotional"
	case ReasonContract:
		return "contract"
	default:
		return "other"
	}
}

// SOXStatus is the final compliance verdict for a record
type SOXStatus string

const (
	StatusCompliant SOXStatus = "SOX Compliant"
	StatusViolation SOXStatus = "SOX Violation"
)

// RiskLevel grades the severity of a verdict. RiskNone is the neutral
// blank an outcome starts from before the pipeline decides.
type RiskLevel string

const (
	RiskNone   RiskLevel = ""
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Separation-of-duties check results
const (
	SoDOK        = "OK"
	SoDViolation = "Violation"
)

// Duplicate-memo flags
const (
	DuplicateYes = "Yes"
	DuplicateNo  = "No"
)

// Timeline status and approval sequence vocabulary. SLA-dependent statuses
// ("Within N days" / "Over N days") are formatted by the timeline evaluator.
const (
	TimelineDatesMissing = "Dates Missing"
	TimelineAfterCM      = "Approval After CM"

	SequenceDatesMissing = "Dates Missing"
	SequenceAfterCM      = "Approval After CM (Violation)"
	SequenceOrderOK      = "Order OK"
	SequenceSLAViolated  = "SLA Violated"
)

// NoViolations is the neutral value for message-bearing outcome fields
const NoViolations = "None"

// Outcome carries every validation field appended to a record. Fields are
// populated once by the validation pipeline and never revisited.
type Outcome struct {
	ReasonClass   ReasonClass
	RequiredLevel *int
	ApproverLevel *int
	FinalApprover string

	Status           SOXStatus
	Risk             RiskLevel
	MissingApprovals string

	ViolationReason string
	ViolationCount  int

	TimelineDays     *int
	TimelineStatus   string
	ApprovalSequence string

	DesignationLevelCheck string
	DuplicateMemo         string
}

// Result pairs a record with its validation outcome
type Result struct {
	Record  Record
	Outcome Outcome
}
