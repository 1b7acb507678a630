package lendy

import (
	"crypto/ed25519"
	"fmt"

	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const (
	OfferAccountSize = (8 + // discriminator
		1 + // version
		7 + // padding
		32 + // pair
		ClientIdSize + // client_offer_id
		8 + // principal
		8 + // collateral
		8 + // remaining_principal
		8 + // remaining_collateral
		32 + // lender
		128) // padding
)

type OfferAccount struct {
	Discriminator       [8]byte
	Version             uint8
	Pair                ed25519.PublicKey
	ClientOfferId       ClientId
	Principal           uint64
	Collateral          uint64
	RemainingPrincipal  uint64
	RemainingCollateral uint64
	// Lender is the lender's User account.
	Lender ed25519.PublicKey
}

func (obj *OfferAccount) Marshal() []byte {
	data := make([]byte, OfferAccountSize)

	var offset int
	binary.PutBytes(data, obj.Discriminator[:], &offset)
	binary.PutUint8(data, obj.Version, &offset)
	binary.Skip(7, &offset)
	binary.PutKey32(data, obj.Pair, &offset)
	putClientId(data, obj.ClientOfferId, &offset)
	binary.PutUint64(data, obj.Principal, &offset)
	binary.PutUint64(data, obj.Collateral, &offset)
	binary.PutUint64(data, obj.RemainingPrincipal, &offset)
	binary.PutUint64(data, obj.RemainingCollateral, &offset)
	binary.PutKey32(data, obj.Lender, &offset)

	return data
}

func (obj *OfferAccount) Unmarshal(data []byte) error {
	if err := checkLayoutSize("Offer", data, OfferAccountSize); err != nil {
		return err
	}

	var offset int
	binary.GetBytes(data, obj.Discriminator[:], &offset)
	binary.GetUint8(data, &obj.Version, &offset)
	binary.Skip(7, &offset)
	binary.GetKey32(data, &obj.Pair, &offset)
	getClientId(data, &obj.ClientOfferId, &offset)
	binary.GetUint64(data, &obj.Principal, &offset)
	binary.GetUint64(data, &obj.Collateral, &offset)
	binary.GetUint64(data, &obj.RemainingPrincipal, &offset)
	binary.GetUint64(data, &obj.RemainingCollateral, &offset)
	binary.GetKey32(data, &obj.Lender, &offset)

	return nil
}

func (obj *OfferAccount) String() string {
	return fmt.Sprintf(
		"OfferAccount{version=%d,pair=%s,client_offer_id=%s,principal=%d,collateral=%d,remaining_principal=%d,remaining_collateral=%d,lender=%s}",
		obj.Version,
		encodeKey(obj.Pair),
		obj.ClientOfferId.Hex(),
		obj.Principal,
		obj.Collateral,
		obj.RemainingPrincipal,
		obj.RemainingCollateral,
		encodeKey(obj.Lender),
	)
}
