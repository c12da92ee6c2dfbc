package holiday

// Category is a static reference entry; the catalog below is the
// authoritative set, served by GET /categories.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

const (
	CategoryPaidHoliday      = "paid_holiday"
	CategoryUnpaidLeave      = "unpaid_leave"
	CategorySickLeave        = "sick_leave"
	CategoryParentalLeave    = "parental_leave"
	CategoryMaternityLeave   = "maternity_leave"
	CategoryCompensatoryRest = "compensatory_rest"
)

var Categories = []Category{
	{ID: CategoryPaidHoliday, Name: "Paid Holidays", Description: "Regular paid time off"},
	{ID: CategoryUnpaidLeave, Name: "Unpaid Leave", Description: "Leave without pay"},
	{ID: CategorySickLeave, Name: "Sick Leave (No Justification)", Description: "Sick leave without medical certificate"},
	{ID: CategoryParentalLeave, Name: "Parental Leave", Description: "Leave for parental duties"},
	{ID: CategoryMaternityLeave, Name: "Maternity Leave", Description: "Leave for maternity/paternity"},
	{ID: CategoryCompensatoryRest, Name: "Compensatory Rest", Description: "Time off in lieu of overtime"},
}

// DefaultCredits assigned to every new user for the current year.
var DefaultCredits = map[string]float64{
	CategoryPaidHoliday:      35.0,
	CategoryUnpaidLeave:      0.0, // tracked but not pre-funded
	CategorySickLeave:        5.0,
	CategoryParentalLeave:    10.0,
	CategoryMaternityLeave:   90.0,
	CategoryCompensatoryRest: 0.0,
}

// IsValidCategory reports whether id names a known category.
func IsValidCategory(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// CategoryName resolves a category id to its display name. Unknown or
// missing categories fall back to the raw id (or a generic label when
// empty) so malformed records stay visible instead of being dropped.
func CategoryName(id string) string {
	if id == "" {
		return "Paid Holidays"
	}
	for _, c := range Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// Style holds the presentation hints a client renders a category with.
type Style struct {
	Icon       string `json:"icon"`
	ColorClass string `json:"color_class"`
}

var categoryStyles = map[string]Style{
	CategoryPaidHoliday:      {Icon: "sun", ColorClass: "bg-blue-100 text-blue-700"},
	CategoryUnpaidLeave:      {Icon: "wallet", ColorClass: "bg-slate-100 text-slate-700"},
	CategorySickLeave:        {Icon: "thermometer", ColorClass: "bg-rose-100 text-rose-700"},
	CategoryParentalLeave:    {Icon: "baby", ColorClass: "bg-emerald-100 text-emerald-700"},
	CategoryMaternityLeave:   {Icon: "heart", ColorClass: "bg-pink-100 text-pink-700"},
	CategoryCompensatoryRest: {Icon: "clock", ColorClass: "bg-amber-100 text-amber-700"},
}

var defaultStyle = Style{Icon: "briefcase", ColorClass: "bg-slate-100 text-slate-700"}

// StyleFor is total over all inputs: unknown categories get the
// default style rather than a key miss.
func StyleFor(categoryID string) Style {
	if s, ok := categoryStyles[categoryID]; ok {
		return s
	}
	return defaultStyle
}
