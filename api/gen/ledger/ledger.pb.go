package ledger

type Account struct {
	Id        string `protobuf:"bytes,1,opt,name=id"`
	OwnerId   string `protobuf:"bytes,2,opt,name=owner_id"`
	Balance   int64  `protobuf:"varint,3,opt,name=balance"`
	Status    string `protobuf:"bytes,4,opt,name=status"`
	CreatedAt string `protobuf:"bytes,5,opt,name=created_at"`
}

type Transaction struct {
	Id              string `protobuf:"bytes,1,opt,name=id"`
	AccountId       string `protobuf:"bytes,2,opt,name=account_id"`
	Type            string `protobuf:"bytes,3,opt,name=type"`
	Amount          int64  `protobuf:"varint,4,opt,name=amount"`
	TargetAccountId string `protobuf:"bytes,5,opt,name=target_account_id"`
	Status          string `protobuf:"bytes,6,opt,name=status"`
	FraudFlag       bool   `protobuf:"varint,7,opt,name=fraud_flag"`
	Sequence        int64  `protobuf:"varint,8,opt,name=sequence"`
	CreatedAt       string `protobuf:"bytes,9,opt,name=created_at"`
	Description     string `protobuf:"bytes,10,opt,name=description"`
}

type CreateAccountRequest struct {
	OwnerId        string `protobuf:"bytes,1,opt,name=owner_id"`
	InitialBalance int64  `protobuf:"varint,2,opt,name=initial_balance"`
}

type CreateAccountResponse struct {
	Account *Account `protobuf:"bytes,1,opt,name=account"`
}

type GetAccountRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id"`
}

type GetAccountResponse struct {
	Account *Account `protobuf:"bytes,1,opt,name=account"`
}

type ListAccountsRequest struct {
	OwnerId string `protobuf:"bytes,1,opt,name=owner_id"`
}

type ListAccountsResponse struct {
	Accounts []*Account `protobuf:"bytes,1,rep,name=accounts"`
	Total    int32      `protobuf:"varint,2,opt,name=total"`
}

type DepositRequest struct {
	AccountId   string `protobuf:"bytes,1,opt,name=account_id"`
	Amount      int64  `protobuf:"varint,2,opt,name=amount"`
	Description string `protobuf:"bytes,3,opt,name=description"`
}

type DepositResponse struct {
	Transaction *Transaction `protobuf:"bytes,1,opt,name=transaction"`
}

type WithdrawRequest struct {
	AccountId   string `protobuf:"bytes,1,opt,name=account_id"`
	Amount      int64  `protobuf:"varint,2,opt,name=amount"`
	Description string `protobuf:"bytes,3,opt,name=description"`
}

type WithdrawResponse struct {
	Transaction *Transaction `protobuf:"bytes,1,opt,name=transaction"`
}

type TransferRequest struct {
	SourceAccountId string `protobuf:"bytes,1,opt,name=source_account_id"`
	TargetAccountId string `protobuf:"bytes,2,opt,name=target_account_id"`
	Amount          int64  `protobuf:"varint,3,opt,name=amount"`
	Description     string `protobuf:"bytes,4,opt,name=description"`
}

type TransferResponse struct {
	Transaction *Transaction `protobuf:"bytes,1,opt,name=transaction"`
}

type FlagFraudRequest struct {
	TransactionId string `protobuf:"bytes,1,opt,name=transaction_id"`
	Reason        string `protobuf:"bytes,2,opt,name=reason"`
}

type FlagFraudResponse struct {
	Transaction *Transaction `protobuf:"bytes,1,opt,name=transaction"`
}

type UnflagFraudRequest struct {
	TransactionId string `protobuf:"bytes,1,opt,name=transaction_id"`
}

type UnflagFraudResponse struct {
	Transaction *Transaction `protobuf:"bytes,1,opt,name=transaction"`
}

type FreezeAccountRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id"`
}

type FreezeAccountResponse struct {
	Account *Account `protobuf:"bytes,1,opt,name=account"`
}

type ActivateAccountRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id"`
}

type ActivateAccountResponse struct {
	Account *Account `protobuf:"bytes,1,opt,name=account"`
}

type CloseAccountRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id"`
}

type CloseAccountResponse struct {
	Account *Account `protobuf:"bytes,1,opt,name=account"`
}

type GetTransactionRequest struct {
	TransactionId string `protobuf:"bytes,1,opt,name=transaction_id"`
}

type GetTransactionResponse struct {
	Transaction *Transaction `protobuf:"bytes,1,opt,name=transaction"`
}

type GetHistoryRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id"`
	Limit     int32  `protobuf:"varint,2,opt,name=limit"`
}

type GetHistoryResponse struct {
	Transactions []*Transaction `protobuf:"bytes,1,rep,name=transactions"`
	Total        int32          `protobuf:"varint,2,opt,name=total"`
}
