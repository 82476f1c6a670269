package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	User struct {
		UUID         uuid.UUID `db:"uuid"`
		Email        string    `db:"email"`
		PasswordHash string    `db:"password_hash"`
		CreatedAt    time.Time `db:"created_at"`
	}

	// PaymentAccount is the balance holder of one user. The balance column is
	// only ever written by the ledger service together with a matching
	// LedgerEntry.
	PaymentAccount struct {
		UUID      uuid.UUID       `db:"uuid"`
		UserUUID  uuid.UUID       `db:"user_uuid"`
		Balance   decimal.Decimal `db:"balance"`
		Status    AccountStatus   `db:"status"`
		CreatedAt time.Time       `db:"created_at"`
		UpdatedAt time.Time       `db:"updated_at"`
	}

	// LedgerEntry is an append-only record of one balance change. Entries are
	// never updated or deleted; FormerBalance of entry n+1 always equals
	// Balance of entry n of the same account.
	LedgerEntry struct {
		ID            int64           `db:"id"`
		AccountUUID   uuid.UUID       `db:"account_uuid"`
		FormerBalance decimal.Decimal `db:"former_balance"`
		Balance       decimal.Decimal `db:"balance"`
		Type          EntryType       `db:"type"`
		PurposeType   PurposeType     `db:"purpose_type"`
		Status        EntryStatus     `db:"status"`
		CreatedAt     time.Time       `db:"created_at"`
	}

	TradeOrder struct {
		UUID        uuid.UUID       `db:"uuid"`
		UserUUID    uuid.UUID       `db:"user_uuid"`
		OrderType   OrderType       `db:"order_type"`
		Amount      decimal.Decimal `db:"amount"`
		Description string          `db:"description"`
		Status      OrderStatus     `db:"status"`
		CreatedAt   time.Time       `db:"created_at"`
		UpdatedAt   time.Time       `db:"updated_at"`
	}

	// ServiceSnapshot freezes the template terms at order time so the order
	// can be fulfilled even if the template changes later.
	ServiceSnapshot struct {
		UUID                uuid.UUID       `db:"uuid"`
		TradeOrderUUID      uuid.UUID       `db:"trade_order_uuid"`
		UserUUID            uuid.UUID       `db:"user_uuid"`
		ServiceTemplateUUID uuid.UUID       `db:"service_template_uuid"`
		ServicePassword     string          `db:"service_password"`
		AutoRenew           bool            `db:"auto_renew"`
		ServiceType         int             `db:"service_type"`
		Title               string          `db:"title"`
		Subtitle            string          `db:"subtitle"`
		Description         string          `db:"description"`
		Package             string          `db:"package"`
		Price               decimal.Decimal `db:"price"`
		InitializationFee   decimal.Decimal `db:"initialization_fee"`
		Status              SnapshotStatus  `db:"status"`
		CreatedAt           time.Time       `db:"created_at"`
	}

	ServiceTemplate struct {
		UUID              uuid.UUID       `db:"uuid"`
		Type              int             `db:"type"`
		Title             string          `db:"title"`
		Subtitle          string          `db:"subtitle"`
		Description       string          `db:"description"`
		Package           string          `db:"package"`
		Price             decimal.Decimal `db:"price"`
		InitializationFee decimal.Decimal `db:"initialization_fee"`
		Status            TemplateStatus  `db:"status"`
		CreatedAt         time.Time       `db:"created_at"`
	}
)

type AccountStatus int

const (
	AccountInitialization AccountStatus = iota
	AccountValid
	AccountDeleted
)

func (s AccountStatus) String() string {
	switch s {
	case AccountInitialization:
		return "INITIALIZATION"
	case AccountValid:
		return "VALID"
	case AccountDeleted:
		return "DELETED"
	}
	return "UNKNOWN"
}

type EntryType int

const (
	EntryDecrease EntryType = iota
	EntryIncrease
)

func (t EntryType) String() string {
	if t == EntryIncrease {
		return "INCREASE"
	}
	return "DECREASE"
}

// EntryStatus is a reserved extension point: every entry is written as
// EntryValid and no code path alters it afterwards.
type EntryStatus int

const (
	EntryInitialization EntryStatus = iota
	EntryValid
	EntryAnnulled
)

type PurposeType int

const (
	PurposeConsume PurposeType = iota
	PurposeRecharge
	PurposeTransferOut
	PurposeTransferIn
	PurposeChargeback
	PurposeCompensation
)

func (p PurposeType) String() string {
	switch p {
	case PurposeConsume:
		return "CONSUME"
	case PurposeRecharge:
		return "RECHARGE"
	case PurposeTransferOut:
		return "TRANSFER_OUT"
	case PurposeTransferIn:
		return "TRANSFER_IN"
	case PurposeChargeback:
		return "CHARGEBACK"
	case PurposeCompensation:
		return "COMPENSATION"
	}
	return "UNKNOWN"
}

// EntryType maps the purpose to the entry type matching its documented
// polarity: consume, transfer-out and chargeback decrease the balance, the
// rest increase it.
func (p PurposeType) EntryType() EntryType {
	switch p {
	case PurposeConsume, PurposeTransferOut, PurposeChargeback:
		return EntryDecrease
	default:
		return EntryIncrease
	}
}

type OrderType int

const (
	OrderTypeConsume OrderType = iota
)

func (t OrderType) String() string {
	return "CONSUME"
}

type OrderStatus int

const (
	OrderInitialization OrderStatus = iota
	OrderPaying
	OrderPaid
	OrderCancel
	OrderDeleted
)

func (s OrderStatus) String() string {
	switch s {
	case OrderInitialization:
		return "INITIALIZATION"
	case OrderPaying:
		return "PAYING"
	case OrderPaid:
		return "PAID"
	case OrderCancel:
		return "CANCEL"
	case OrderDeleted:
		return "DELETED"
	}
	return "UNKNOWN"
}

// Open reports whether the order still awaits payment.
func (s OrderStatus) Open() bool {
	return s == OrderInitialization || s == OrderPaying
}

type SnapshotStatus int

const (
	SnapshotInitialization SnapshotStatus = iota
	SnapshotValid
	SnapshotDeleted
)

type TemplateStatus int

const (
	TemplateInitialization TemplateStatus = iota
	TemplateValid
	TemplateSuspended
	TemplateDeleted
)

func (s TemplateStatus) String() string {
	switch s {
	case TemplateInitialization:
		return "INITIALIZATION"
	case TemplateValid:
		return "VALID"
	case TemplateSuspended:
		return "SUSPENDED"
	case TemplateDeleted:
		return "DELETED"
	}
	return "UNKNOWN"
}
