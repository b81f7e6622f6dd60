package student

// Seed returns the fixed dataset the marks file is reset to.
func Seed() []Student {
	return []Student{
		{ID: "1345", Name: "John Curry", Coursework: [3]int{8, 15, 7}, Exam: 45},
		{ID: "2345", Name: "Sam Sturtivant", Coursework: [3]int{14, 15, 14}, Exam: 77},
		{ID: "9876", Name: "Lee Scott", Coursework: [3]int{17, 11, 16}, Exam: 99},
		{ID: "3724", Name: "Matt Thompson", Coursework: [3]int{19, 11, 15}, Exam: 81},
		{ID: "1212", Name: "Ron Herrema", Coursework: [3]int{14, 17, 18}, Exam: 66},
		{ID: "8439", Name: "Jake Hobbs", Coursework: [3]int{10, 11, 10}, Exam: 43},
		{ID: "2344", Name: "Jo Hyde", Coursework: [3]int{6, 15, 10}, Exam: 55},
		{ID: "9384", Name: "Gareth Southgate", Coursework: [3]int{5, 6, 8}, Exam: 33},
		{ID: "8327", Name: "Alan Shearer", Coursework: [3]int{20, 20, 20}, Exam: 100},
		{ID: "2983", Name: "Les Ferdinand", Coursework: [3]int{15, 17, 18}, Exam: 92},
	}
}
