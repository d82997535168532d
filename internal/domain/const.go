package domain

// StatusID identifies a row of the warranty_statuses lookup table.
//
// The set of statuses is data driven. Only the ids below carry a fixed meaning,
// and that meaning is a protocol contract between the seed data and the
// lifecycle operations that append or amend history records.
type StatusID int64

const (
	// StatusIssuance marks the first record of a guarantee (emisión)
	StatusIssuance StatusID = 1
	// StatusRenewal marks a renewal of the letter (renovación)
	StatusRenewal StatusID = 2
	// StatusReturn marks the letter as returned to the contractor (devolución)
	StatusReturn StatusID = 3
	// StatusReserved is seeded but no operation produces it
	StatusReserved StatusID = 4
	// StatusExecution marks the letter as executed by the beneficiary (ejecución)
	StatusExecution StatusID = 6
)

// CarriesCommitment reports whether records with this status hold a letter number,
// a validity window and an amount.
func (s StatusID) CarriesCommitment() bool {
	return s != StatusReturn && s != StatusExecution
}

// AmendKind names one of the in-place amend operations on a history record.
type AmendKind string

const (
	AmendIssuance  AmendKind = "emision"
	AmendRenewal   AmendKind = "renovacion"
	AmendReturn    AmendKind = "devolucion"
	AmendExecution AmendKind = "ejecucion"
)

// ExpectedStatus returns the status a record must have to be amended with this kind.
func (k AmendKind) ExpectedStatus() StatusID {
	switch k {
	case AmendIssuance:
		return StatusIssuance
	case AmendRenewal:
		return StatusRenewal
	case AmendReturn:
		return StatusReturn
	case AmendExecution:
		return StatusExecution
	default:
		return 0
	}
}

// Valid reports whether k is a known amend kind
func (k AmendKind) Valid() bool {
	return k.ExpectedStatus() != 0
}

const (
	// MaxAttachmentSize is the largest accepted attachment, in bytes
	MaxAttachmentSize int64 = 10 * 1024 * 1024
	// AttachmentExtension is the only accepted attachment extension
	AttachmentExtension = ".pdf"
	// AttachmentContentType is the only accepted attachment MIME type
	AttachmentContentType = "application/pdf"

	// DateLayout is the wire format of calendar dates
	DateLayout = "2006-01-02"
)
