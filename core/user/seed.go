package user

import "strings"

// seedUsers is the fixed demo roster. Seed identities are always present in
// every read and are immutable: saves addressed to a seed email are dropped.
// On email collision the seed record wins.
var seedUsers = []User{
	{
		ID:         "1",
		Name:       "John Doe",
		Email:      "john@student.com",
		Role:       RoleStudent,
		Status:     StatusApproved,
		RegisterNo: "REG-2024-001",
		Department: "Computer Science",
	},
	{
		ID:         "2",
		Name:       "Jane Smith",
		Email:      "jane@student.com",
		Role:       RoleStudent,
		Status:     StatusApproved,
		RegisterNo: "REG-2024-002",
		Department: "Data Science",
	},
	{
		ID:         "3",
		Name:       "Dr. Sarah Wilson",
		Email:      "admin@faculty.com",
		Role:       RoleAdmin,
		Status:     StatusApproved,
		Department: "Faculty of Engineering",
	},
}

func init() {
	// demo-grade credentials, hashed like any other account's
	pwds := map[string]string{"1": "student123", "2": "student123", "3": "admin123"}
	for i := range seedUsers {
		if err := seedUsers[i].SetPassword(pwds[seedUsers[i].ID]); err != nil {
			panic(err)
		}
	}
}

// SeedUsers returns a copy of the seed roster.
func SeedUsers() []User {
	users := make([]User, len(seedUsers))
	copy(users, seedUsers)
	return users
}

// IsSeedEmail reports whether email belongs to a seed identity. Matching is
// case-insensitive.
func IsSeedEmail(email string) bool {
	for _, u := range seedUsers {
		if strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
