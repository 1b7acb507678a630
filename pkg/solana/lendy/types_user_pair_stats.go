package lendy

import (
	"crypto/ed25519"
	"fmt"

	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const (
	UserPairStatsSize = (32 + // pair
		8 + // offered
		8 + // borrowed
		8 + // all_time_claimed
		8 + // all_time_earned
		8 + // owed
		8 + // all_time_repaid
		8) // all_time_defaulted
)

// UserPairStats tracks a user's lending activity on a single pair.
type UserPairStats struct {
	Pair             ed25519.PublicKey
	Offered          uint64
	Borrowed         uint64
	AllTimeClaimed   uint64
	AllTimeEarned    uint64
	Owed             uint64
	AllTimeRepaid    uint64
	AllTimeDefaulted uint64
}

func putUserPairStats(dst []byte, v *UserPairStats, offset *int) {
	binary.PutKey32(dst, v.Pair, offset)
	binary.PutUint64(dst, v.Offered, offset)
	binary.PutUint64(dst, v.Borrowed, offset)
	binary.PutUint64(dst, v.AllTimeClaimed, offset)
	binary.PutUint64(dst, v.AllTimeEarned, offset)
	binary.PutUint64(dst, v.Owed, offset)
	binary.PutUint64(dst, v.AllTimeRepaid, offset)
	binary.PutUint64(dst, v.AllTimeDefaulted, offset)
}

func getUserPairStats(src []byte, dst *UserPairStats, offset *int) {
	binary.GetKey32(src, &dst.Pair, offset)
	binary.GetUint64(src, &dst.Offered, offset)
	binary.GetUint64(src, &dst.Borrowed, offset)
	binary.GetUint64(src, &dst.AllTimeClaimed, offset)
	binary.GetUint64(src, &dst.AllTimeEarned, offset)
	binary.GetUint64(src, &dst.Owed, offset)
	binary.GetUint64(src, &dst.AllTimeRepaid, offset)
	binary.GetUint64(src, &dst.AllTimeDefaulted, offset)
}

func (obj *UserPairStats) Marshal() []byte {
	data := make([]byte, UserPairStatsSize)
	var offset int
	putUserPairStats(data, obj, &offset)
	return data
}

func (obj *UserPairStats) Unmarshal(data []byte) error {
	if err := checkLayoutSize("UserPairStats", data, UserPairStatsSize); err != nil {
		return err
	}
	var offset int
	getUserPairStats(data, obj, &offset)
	return nil
}

func (obj *UserPairStats) String() string {
	return fmt.Sprintf(
		"UserPairStats{pair=%s,offered=%d,borrowed=%d,all_time_claimed=%d,all_time_earned=%d,owed=%d,all_time_repaid=%d,all_time_defaulted=%d}",
		encodeKey(obj.Pair),
		obj.Offered,
		obj.Borrowed,
		obj.AllTimeClaimed,
		obj.AllTimeEarned,
		obj.Owed,
		obj.AllTimeRepaid,
		obj.AllTimeDefaulted,
	)
}
