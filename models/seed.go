package models

import "time"

func strPtr(s string) *string { return &s }

// SeedEvents returns the catalog shipped with a fresh deployment. The seed
// participant numbers are display baselines only; live registrations take
// over as soon as the ledger has any rows for an event.
func SeedEvents() []*Event {
	createdAt := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	return []*Event{
		{
			ID: "1", Name: "Pro Mixed Doubles Round Robin",
			Type: TypeRoundRobin, Format: FormatMixed, SkillLevel: Skill45Plus,
			EventDate: "2024-03-15", StartTime: "09:00", EndTime: "14:00",
			RegistrationDeadline: "2024-03-10",
			MinRating:            4.5, MaxRating: 6.0, EntryFeeUSDC: 75,
			MaxParticipants: 24, SeedParticipants: 16,
			Location:    "Main Street Pickleball Club",
			Description: strPtr("Professional level mixed doubles tournament with guaranteed 6 games"),
			ImageURL:    strPtr("/images/mixed-doubles.jpg"),
			CreatedBy:   "seed", CreatedAt: createdAt,
		},
		{
			ID: "2", Name: "Intermediate Doubles Ladder",
			Type: TypeLadder, Format: FormatDoubles, SkillLevel: Skill35to40,
			EventDate: "2024-04-01", StartTime: "18:00", EndTime: "21:00",
			RegistrationDeadline: "2024-03-25",
			MinRating:            3.5, MaxRating: 4.0, EntryFeeUSDC: 40,
			MaxParticipants: 32, SeedParticipants: 22,
			Location:    "Indoor Pickleball Zone",
			Description: strPtr("Weekly doubles ladder for intermediate players. Play multiple matches and move up/down the ladder."),
			ImageURL:    strPtr("/images/double-ladder.jpg"),
			CreatedBy:   "seed", CreatedAt: createdAt,
		},
		{
			ID: "3", Name: "Beginner Friendly Social",
			Type: TypeSocial, Format: FormatMixed, SkillLevel: Skill25to30,
			EventDate: "2024-05-08", StartTime: "10:00", EndTime: "13:00",
			RegistrationDeadline: "2024-05-06",
			MinRating:            2.5, MaxRating: 3.0, EntryFeeUSDC: 25,
			MaxParticipants: 20, SeedParticipants: 8,
			Location:    "Community Center Courts",
			Description: strPtr("Fun social event for beginners. Includes basic instruction and organized play."),
			ImageURL:    strPtr("/images/beginner-social.jpg"),
			CreatedBy:   "seed", CreatedAt: createdAt,
		},
		{
			ID: "4", Name: "Advanced Singles Championship",
			Type: TypeBracket, Format: FormatSingles, SkillLevel: Skill40to45,
			EventDate: "2024-06-01", StartTime: "08:00", EndTime: "17:00",
			RegistrationDeadline: "2024-05-25",
			MinRating:            4.0, MaxRating: 4.5, EntryFeeUSDC: 60,
			MaxParticipants: 32, SeedParticipants: 12,
			Location:    "Championship Courts",
			Description: strPtr("Single elimination tournament with consolation bracket. Medals for top 3 finishers."),
			ImageURL:    strPtr("/images/singles-championship.jpg"),
			CreatedBy:   "seed", CreatedAt: createdAt,
		},
		{
			ID: "5", Name: "Mixed Skills Round Robin",
			Type: TypeRoundRobin, Format: FormatMixed, SkillLevel: Skill30to35,
			EventDate: "2024-03-22", StartTime: "16:00", EndTime: "20:00",
			RegistrationDeadline: "2024-03-18",
			MinRating:            3.0, MaxRating: 3.5, EntryFeeUSDC: 35,
			MaxParticipants: 24, SeedParticipants: 18,
			Location:    "Sunset Pickleball Complex",
			Description: strPtr("Evening round robin with rotating partners. Great for meeting new players!"),
			ImageURL:    strPtr("/images/mixed-skills.jpg"),
			CreatedBy:   "seed", CreatedAt: createdAt,
		},
		{
			ID: "6", Name: "Ladies Doubles Social",
			Type: TypeSocial, Format: FormatDoubles, SkillLevel: Skill30to35,
			EventDate: "2024-05-29", StartTime: "09:00", EndTime: "12:00",
			RegistrationDeadline: "2024-05-25",
			MinRating:            3.0, MaxRating: 3.5, EntryFeeUSDC: 30,
			MaxParticipants: 24, SeedParticipants: 14,
			Location:    "Riverside Recreation Center",
			Description: strPtr("Ladies-only doubles social event. All skill levels welcome within rating range."),
			ImageURL:    strPtr("/images/ladies-doubles.jpg"),
			CreatedBy:   "seed", CreatedAt: createdAt,
		},
		{
			ID: "7", Name: "Pro Singles Shootout",
			Type: TypeBracket, Format: FormatSingles, SkillLevel: Skill45Plus,
			EventDate: "2024-06-15", StartTime: "08:00", EndTime: "18:00",
			RegistrationDeadline: "2024-06-10",
			MinRating:            4.5, MaxRating: 6.0, EntryFeeUSDC: 100,
			MaxParticipants: 32, SeedParticipants: 8,
			Location:    "Elite Pickleball Academy",
			Description: strPtr("High-stakes professional singles tournament with cash prizes."),
			ImageURL:    strPtr("/images/pro-singles.jpg"),
			CreatedBy:   "seed", CreatedAt: createdAt,
		},
		{
			ID: "8", Name: "Youth Development Series",
			Type: TypeRoundRobin, Format: FormatMixed, SkillLevel: Skill25to30,
			EventDate: "2024-03-08", StartTime: "14:00", EndTime: "17:00",
			RegistrationDeadline: "2024-03-05",
			MinRating:            2.5, MaxRating: 3.0, EntryFeeUSDC: 20,
			MaxParticipants: 16, SeedParticipants: 6,
			Location:    "Community Youth Center",
			Description: strPtr("Coached round robin for junior players working toward their first rating."),
			ImageURL:    strPtr("/images/youth-series.jpg"),
			CreatedBy:   "seed", CreatedAt: createdAt,
		},
	}
}
