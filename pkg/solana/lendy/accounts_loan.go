package lendy

import (
	"crypto/ed25519"
	"fmt"

	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const (
	LoanAccountSize = (8 + // discriminator
		1 + // version
		7 + // padding
		ClientIdSize + // bulk_uuid
		ClientIdSize + // client_loan_id
		4 + // padding
		32 + // pair
		4 + // apr_bps
		8 + // principal
		8 + // collateral
		8 + // duration_sec
		32 + // lender
		8 + // start_time
		8 + // end_time
		32 + // borrower
		1 + // status
		896) // padding
)

type LoanAccount struct {
	Discriminator [8]byte
	Version       uint8
	BulkUuid      ClientId
	ClientLoanId  ClientId
	Pair          ed25519.PublicKey
	AprBps        uint32
	Principal     uint64
	Collateral    uint64
	DurationSec   uint64
	// Lender and Borrower are User accounts.
	Lender    ed25519.PublicKey
	StartTime uint64
	EndTime   uint64
	Borrower  ed25519.PublicKey
	Status    uint8
}

func (obj *LoanAccount) Marshal() []byte {
	data := make([]byte, LoanAccountSize)

	var offset int
	binary.PutBytes(data, obj.Discriminator[:], &offset)
	binary.PutUint8(data, obj.Version, &offset)
	binary.Skip(7, &offset)
	putClientId(data, obj.BulkUuid, &offset)
	putClientId(data, obj.ClientLoanId, &offset)
	binary.Skip(4, &offset)
	binary.PutKey32(data, obj.Pair, &offset)
	binary.PutUint32(data, obj.AprBps, &offset)
	binary.PutUint64(data, obj.Principal, &offset)
	binary.PutUint64(data, obj.Collateral, &offset)
	binary.PutUint64(data, obj.DurationSec, &offset)
	binary.PutKey32(data, obj.Lender, &offset)
	binary.PutUint64(data, obj.StartTime, &offset)
	binary.PutUint64(data, obj.EndTime, &offset)
	binary.PutKey32(data, obj.Borrower, &offset)
	binary.PutUint8(data, obj.Status, &offset)

	return data
}

func (obj *LoanAccount) Unmarshal(data []byte) error {
	if err := checkLayoutSize("Loan", data, LoanAccountSize); err != nil {
		return err
	}

	var offset int
	binary.GetBytes(data, obj.Discriminator[:], &offset)
	binary.GetUint8(data, &obj.Version, &offset)
	binary.Skip(7, &offset)
	getClientId(data, &obj.BulkUuid, &offset)
	getClientId(data, &obj.ClientLoanId, &offset)
	binary.Skip(4, &offset)
	binary.GetKey32(data, &obj.Pair, &offset)
	binary.GetUint32(data, &obj.AprBps, &offset)
	binary.GetUint64(data, &obj.Principal, &offset)
	binary.GetUint64(data, &obj.Collateral, &offset)
	binary.GetUint64(data, &obj.DurationSec, &offset)
	binary.GetKey32(data, &obj.Lender, &offset)
	binary.GetUint64(data, &obj.StartTime, &offset)
	binary.GetUint64(data, &obj.EndTime, &offset)
	binary.GetKey32(data, &obj.Borrower, &offset)
	binary.GetUint8(data, &obj.Status, &offset)

	return nil
}

func (obj *LoanAccount) String() string {
	return fmt.Sprintf(
		"LoanAccount{version=%d,bulk_uuid=%s,client_loan_id=%s,pair=%s,apr_bps=%d,principal=%d,collateral=%d,duration_sec=%d,lender=%s,start_time=%d,end_time=%d,borrower=%s,status=%d}",
		obj.Version,
		obj.BulkUuid.Hex(),
		obj.ClientLoanId.Hex(),
		encodeKey(obj.Pair),
		obj.AprBps,
		obj.Principal,
		obj.Collateral,
		obj.DurationSec,
		encodeKey(obj.Lender),
		obj.StartTime,
		obj.EndTime,
		encodeKey(obj.Borrower),
		obj.Status,
	)
}
