package finance

const (
	CategoryFood           = "Food"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryUtilities      = "Utilities"
	CategoryMedical        = "Medical"
	CategoryEducation      = "Education"
	CategoryMiscellaneous  = "Miscellaneous"
)

var Categories = []string{
	CategoryFood,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryUtilities,
	CategoryMedical,
	CategoryEducation,
	CategoryMiscellaneous,
}

const (
	FrequencyOneTime = "One-time"
	FrequencyMonthly = "Monthly"
	FrequencyWeekly  = "Weekly"
	FrequencyYearly  = "Yearly"
)

var Frequencies = []string{
	FrequencyOneTime,
	FrequencyMonthly,
	FrequencyWeekly,
	FrequencyYearly,
}

func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

func IsFrequency(s string) bool {
	for _, f := range Frequencies {
		if f == s {
			return true
		}
	}
	return false
}
