package card

// DefaultCatalogue returns the four-card catalogue pushed to every
// client immediately on accept (spec.md §2, §4.3, §4.6). Values are
// plausible defaults for an emulator whose purpose is reaching a
// steady logged-in state, not balanced gameplay (spec.md §1).
func DefaultCatalogue() []Card {
	return []Card{
		LogicMain{
			ID:            "logic_main",
			LadderSize:    100,
			MaxBestScores: 10,
			PlayerNameMax: 16,
			HorseNameMax:  16,
			LevelUpBonus: Reward{
				MoneyCoins:        500,
				MoneySkillTickets: 1,
				XP:                0,
				AP:                10,
			},
			ChallengeWinBonus: Reward{
				MoneyCoins:        200,
				MoneySkillTickets: 0,
				XP:                50,
				AP:                5,
			},
			LevelXPThresholds:   []int32{0, 100, 250, 500, 1000, 2000, 4000, 8000, 16000, 32000},
			SkillPointsPerLevel: 1,
			AvatarChangePrice: Price{
				Coins:        1000,
				SkillTickets: 0,
			},
			Flags:          nil,
			PremiumBonuses: defaultBonuses(),
		},
		LogicActionPoints{
			ID:            "logic_action_points",
			Tuning:        [ActionPointsTuningFields]uint32{100, 1, 5, 10, 60, 1, 0},
			BuffThreshold: 0.5,
			BuffBonuses:   defaultBonuses(),
		},
		LogicChat{
			ID:                "logic_chat",
			MessageCountLimit: 10,
			TimeWindowSeconds: 10,
			SpamBanSeconds:    60,
			StarPlayerIDs:     nil,
		},
		LogicSkins{
			ID:          "skins",
			HorseSkins:  []string{"horse_default", "horse_bay", "horse_chestnut"},
			TailSkins:   []string{"tail_default", "tail_braided"},
			PlayerSkins: []string{"rider_default", "rider_formal"},
			HairSkins: []HairSkin{
				{Primary: [4]float32{0.2, 0.1, 0.05, 1}, Secondary: [4]float32{0.3, 0.2, 0.1, 1}},
				{Primary: [4]float32{0.8, 0.7, 0.5, 1}, Secondary: [4]float32{0.9, 0.8, 0.6, 1}},
			},
		},
	}
}

func defaultBonuses() Bonuses {
	return Bonuses{
		SkillTicketRate: 1,
		XPRate:          1,
		LootRate:        1,
		APCostRate:      1,
		APRestoreRate:   1,
		APMax:           100,
		Strength:        100,
		Timing:          100,
		Speed:           100,
		Acceleration:    100,
		Stamina:         100,
		Obedience:       100,
	}
}
