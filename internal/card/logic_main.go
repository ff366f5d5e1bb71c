package card

import "github.com/rcc-emulator/server/internal/wire"

// LogicMain is the LogicMain catalogue entry (category 0x15): ladder
// and name limits, level-up/challenge rewards, the level-XP curve,
// skill points per level, the avatar-change price, feature flags, and
// premium bonuses (spec.md §3).
type LogicMain struct {
	ID string

	LadderSize    int32
	MaxBestScores int32
	PlayerNameMax int32
	HorseNameMax  int32

	LevelUpBonus      Reward
	ChallengeWinBonus Reward

	LevelXPThresholds []int32

	SkillPointsPerLevel float32

	AvatarChangePrice Price

	Flags []string

	PremiumBonuses Bonuses
}

// Category returns CategoryLogicMain.
func (c LogicMain) Category() Category { return CategoryLogicMain }

// CardID returns the card's ID string ("logic_main" in the default
// catalogue).
func (c LogicMain) CardID() string { return c.ID }

// Encode writes LogicMain's fields in the exact order the client
// reader expects, including the unexplained FF F0 sentinel after the
// flags list (spec.md §3, §9).
func (c LogicMain) Encode(w *wire.Writer) {
	w.WriteI32(c.LadderSize)
	w.WriteI32(c.MaxBestScores)
	w.WriteI32(c.PlayerNameMax)
	w.WriteI32(c.HorseNameMax)

	c.LevelUpBonus.Encode(w)
	c.ChallengeWinBonus.Encode(w)

	w.WriteVarInt(uint32(len(c.LevelXPThresholds)))
	for _, xp := range c.LevelXPThresholds {
		w.WriteI32(xp)
	}

	w.WriteF32(c.SkillPointsPerLevel)

	c.AvatarChangePrice.Encode(w)

	w.WriteVarInt(uint32(len(c.Flags)))
	for _, flag := range c.Flags {
		w.WriteString(flag)
	}

	w.WriteBytes(sentinel)

	c.PremiumBonuses.Encode(w)
}
