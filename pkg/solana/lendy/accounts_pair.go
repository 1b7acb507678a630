package lendy

import (
	"crypto/ed25519"
	"fmt"

	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const (
	PairAccountSize = (8 + // discriminator
		1 + // version
		1 + // enabled
		MaxSymbolSize + // symbol
		4 + // apr_bps
		4 + // fee_rate_bps
		8 + // duration_sec
		32 + // principal_mint
		32 + // collateral_mint
		32 + // collateral_fee_receiver
		8 + // min_offer_principal
		32 + // principal_fee_receiver
		2 + // min_auto_ltv_range_bps
		2 + // offers_mgmt_fee_rate_bps
		128) // padding
)

type PairAccount struct {
	Discriminator         [8]byte
	Version               uint8
	Enabled               uint8
	Symbol                Symbol
	AprBps                uint32
	FeeRateBps            uint32
	DurationSec           uint64
	PrincipalMint         ed25519.PublicKey
	CollateralMint        ed25519.PublicKey
	CollateralFeeReceiver ed25519.PublicKey
	MinOfferPrincipal     uint64
	PrincipalFeeReceiver  ed25519.PublicKey
	MinAutoLtvRangeBps    uint16
	OffersMgmtFeeRateBps  uint16
}

func (obj *PairAccount) IsEnabled() bool {
	return obj.Enabled != 0
}

func (obj *PairAccount) Marshal() []byte {
	data := make([]byte, PairAccountSize)

	var offset int
	binary.PutBytes(data, obj.Discriminator[:], &offset)
	binary.PutUint8(data, obj.Version, &offset)
	binary.PutUint8(data, obj.Enabled, &offset)
	binary.PutBytes(data, obj.Symbol[:], &offset)
	binary.PutUint32(data, obj.AprBps, &offset)
	binary.PutUint32(data, obj.FeeRateBps, &offset)
	binary.PutUint64(data, obj.DurationSec, &offset)
	binary.PutKey32(data, obj.PrincipalMint, &offset)
	binary.PutKey32(data, obj.CollateralMint, &offset)
	binary.PutKey32(data, obj.CollateralFeeReceiver, &offset)
	binary.PutUint64(data, obj.MinOfferPrincipal, &offset)
	binary.PutKey32(data, obj.PrincipalFeeReceiver, &offset)
	binary.PutUint16(data, obj.MinAutoLtvRangeBps, &offset)
	binary.PutUint16(data, obj.OffersMgmtFeeRateBps, &offset)

	return data
}

func (obj *PairAccount) Unmarshal(data []byte) error {
	if err := checkLayoutSize("Pair", data, PairAccountSize); err != nil {
		return err
	}

	var offset int
	binary.GetBytes(data, obj.Discriminator[:], &offset)
	binary.GetUint8(data, &obj.Version, &offset)
	binary.GetUint8(data, &obj.Enabled, &offset)
	binary.GetBytes(data, obj.Symbol[:], &offset)
	binary.GetUint32(data, &obj.AprBps, &offset)
	binary.GetUint32(data, &obj.FeeRateBps, &offset)
	binary.GetUint64(data, &obj.DurationSec, &offset)
	binary.GetKey32(data, &obj.PrincipalMint, &offset)
	binary.GetKey32(data, &obj.CollateralMint, &offset)
	binary.GetKey32(data, &obj.CollateralFeeReceiver, &offset)
	binary.GetUint64(data, &obj.MinOfferPrincipal, &offset)
	binary.GetKey32(data, &obj.PrincipalFeeReceiver, &offset)
	binary.GetUint16(data, &obj.MinAutoLtvRangeBps, &offset)
	binary.GetUint16(data, &obj.OffersMgmtFeeRateBps, &offset)

	return nil
}

func (obj *PairAccount) String() string {
	return fmt.Sprintf(
		"PairAccount{version=%d,enabled=%d,symbol=%s,apr_bps=%d,fee_rate_bps=%d,duration_sec=%d,principal_mint=%s,collateral_mint=%s,collateral_fee_receiver=%s,min_offer_principal=%d,principal_fee_receiver=%s,min_auto_ltv_range_bps=%d,offers_mgmt_fee_rate_bps=%d}",
		obj.Version,
		obj.Enabled,
		obj.Symbol,
		obj.AprBps,
		obj.FeeRateBps,
		obj.DurationSec,
		encodeKey(obj.PrincipalMint),
		encodeKey(obj.CollateralMint),
		encodeKey(obj.CollateralFeeReceiver),
		obj.MinOfferPrincipal,
		encodeKey(obj.PrincipalFeeReceiver),
		obj.MinAutoLtvRangeBps,
		obj.OffersMgmtFeeRateBps,
	)
}
