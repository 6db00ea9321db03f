package domain

type TradeType string

const (
	TradeTypeSale TradeType = "sale"
	TradeTypeRent TradeType = "rent"
)

type ItemStatusType string

const (
	ItemStatusActive ItemStatusType = "active"
	// ItemStatusReserved — товар закреплен за оплаченной сделкой и недоступен другим покупателям.
	ItemStatusReserved ItemStatusType = "reserved"
	ItemStatusSold     ItemStatusType = "sold"
	ItemStatusRemoved  ItemStatusType = "removed"
)

type TradeStatusType string

const (
	TradeStatusPaid      TradeStatusType = "paid"
	TradeStatusCompleted TradeStatusType = "completed"
	TradeStatusCanceled  TradeStatusType = "canceled"
	TradeStatusDisputed  TradeStatusType = "disputed"
)

type OfferStatusType string

const (
	OfferStatusPending  OfferStatusType = "pending"
	OfferStatusAccepted OfferStatusType = "accepted"
	OfferStatusRejected OfferStatusType = "rejected"
	// OfferStatusConsumed принятый оффер, по которому уже создана сделка.
	OfferStatusConsumed OfferStatusType = "consumed"
)

type LedgerCauseType string

const (
	LedgerCauseRentalPayment      LedgerCauseType = "rental_payment"
	LedgerCausePurchasePayment    LedgerCauseType = "purchase_payment"
	LedgerCauseTransactionReceipt LedgerCauseType = "transaction_receipt"
	LedgerCauseTransactionRefund  LedgerCauseType = "transaction_refund"
	LedgerCauseDepositRefund      LedgerCauseType = "deposit_refund"
	LedgerCauseReviewReward       LedgerCauseType = "review_reward"
	LedgerCauseSignupGrant        LedgerCauseType = "signup_grant"
)

// DepositPolicyType определяет судьбу залога при нормальном завершении аренды.
type DepositPolicyType string

const (
	// DepositPolicyRetain — залог остается у площадки.
	DepositPolicyRetain DepositPolicyType = "retain"
	// DepositPolicyRefund — залог возвращается покупателю с записью deposit_refund.
	DepositPolicyRefund DepositPolicyType = "refund"
)

type ComplaintStatusType string

const (
	ComplaintStatusPending    ComplaintStatusType = "pending"
	ComplaintStatusProcessing ComplaintStatusType = "processing"
	ComplaintStatusResolved   ComplaintStatusType = "resolved"
	ComplaintStatusRejected   ComplaintStatusType = "rejected"
)
