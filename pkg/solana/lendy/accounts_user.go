package lendy

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const UserPairStatsCount = 32

const (
	UserAccountSize = (8 + // discriminator
		1 + // version
		1 + // bump
		MaxNickSize + // nick
		32 + // owner
		8 + // next_offer_seq_no
		8 + // next_loan_seq_no
		UserPairStatsCount*UserPairStatsSize + // stats
		320) // padding
)

type UserAccount struct {
	Discriminator  [8]byte
	Version        uint8
	Bump           uint8
	Nick           Nick
	Owner          ed25519.PublicKey
	NextOfferSeqNo uint64
	NextLoanSeqNo  uint64
	Stats          [UserPairStatsCount]UserPairStats
}

func (obj *UserAccount) Marshal() []byte {
	data := make([]byte, UserAccountSize)

	var offset int
	binary.PutBytes(data, obj.Discriminator[:], &offset)
	binary.PutUint8(data, obj.Version, &offset)
	binary.PutUint8(data, obj.Bump, &offset)
	binary.PutBytes(data, obj.Nick[:], &offset)
	binary.PutKey32(data, obj.Owner, &offset)
	binary.PutUint64(data, obj.NextOfferSeqNo, &offset)
	binary.PutUint64(data, obj.NextLoanSeqNo, &offset)
	for i := range obj.Stats {
		putUserPairStats(data, &obj.Stats[i], &offset)
	}

	return data
}

func (obj *UserAccount) Unmarshal(data []byte) error {
	if err := checkLayoutSize("User", data, UserAccountSize); err != nil {
		return err
	}

	var offset int
	binary.GetBytes(data, obj.Discriminator[:], &offset)
	binary.GetUint8(data, &obj.Version, &offset)
	binary.GetUint8(data, &obj.Bump, &offset)
	binary.GetBytes(data, obj.Nick[:], &offset)
	binary.GetKey32(data, &obj.Owner, &offset)
	binary.GetUint64(data, &obj.NextOfferSeqNo, &offset)
	binary.GetUint64(data, &obj.NextLoanSeqNo, &offset)
	for i := range obj.Stats {
		getUserPairStats(data, &obj.Stats[i], &offset)
	}

	return nil
}

// PairStats returns the stats slot tracking pair, if any.
func (obj *UserAccount) PairStats(pair ed25519.PublicKey) (*UserPairStats, bool) {
	for i := range obj.Stats {
		if obj.Stats[i].Pair.Equal(pair) {
			return &obj.Stats[i], true
		}
	}
	return nil, false
}

func (obj *UserAccount) String() string {
	var stats []string
	for i := range obj.Stats {
		if len(obj.Stats[i].Pair) == 0 || obj.Stats[i].Pair.Equal(make(ed25519.PublicKey, ed25519.PublicKeySize)) {
			continue
		}
		stats = append(stats, obj.Stats[i].String())
	}

	return fmt.Sprintf(
		"UserAccount{version=%d,bump=%d,nick=%s,owner=%s,next_offer_seq_no=%d,next_loan_seq_no=%d,stats=[%s]}",
		obj.Version,
		obj.Bump,
		obj.Nick,
		encodeKey(obj.Owner),
		obj.NextOfferSeqNo,
		obj.NextLoanSeqNo,
		strings.Join(stats, ","),
	)
}
