package vocab

// DefaultLabels returns the built-in category list used when the caller
// supplies neither explicit categories nor a target count and derivation
// is disabled.
func DefaultLabels() []string {
	return []string{
		"Groceries",
		"Dining",
		"Coffee",
		"Shopping",
		"Transportation",
		"Entertainment",
		"Utilities",
		"Healthcare",
		"Travel",
		"Income",
		"Transfers",
		"Fees",
	}
}

// lexicon maps canonical bucket names (lowercase) to reference terms.
// A user label that matches a bucket name inherits its terms, so a
// vocabulary like ["Coffee", "Shopping"] can match merchant descriptions
// that never mention the label itself.
var lexicon = map[string][]string{
	"groceries": {
		"grocery", "supermarket", "market", "woolworths", "coles", "aldi",
		"costco", "iga", "whole foods", "trader joe", "safeway", "kroger",
	},
	"dining": {
		"restaurant", "cafe", "diner", "grill", "pizza", "sushi", "mcdonalds",
		"subway", "kfc", "burger", "chipotle", "doordash", "uber eats",
		"grubhub", "deliveroo",
	},
	"coffee": {
		"coffee", "espresso", "latte", "roasters", "starbucks", "dunkin",
		"peets", "caribou",
	},
	"shopping": {
		"amazon", "ebay", "target", "walmart", "ikea", "etsy", "best buy",
		"store", "shop", "retail",
	},
	"transportation": {
		"uber", "lyft", "taxi", "transit", "metro", "parking", "shell",
		"chevron", "exxon", "bp", "fuel", "gas station", "toll",
	},
	"entertainment": {
		"netflix", "spotify", "hulu", "disney", "cinema", "theater",
		"steam", "playstation", "xbox", "concert", "tickets",
	},
	"utilities": {
		"electric", "water", "gas", "internet", "phone", "wireless",
		"verizon", "comcast", "utility", "energy",
	},
	"healthcare": {
		"pharmacy", "cvs", "walgreens", "medical", "dental", "doctor",
		"clinic", "hospital", "health",
	},
	"travel": {
		"airline", "airlines", "hotel", "airbnb", "delta", "united",
		"southwest", "expedia", "flight", "rental car",
	},
	"income": {
		"payroll", "direct deposit", "salary", "deposit", "interest",
		"dividend", "refund", "reimbursement",
	},
	"transfers": {
		"transfer", "venmo", "zelle", "paypal", "cash app", "wire", "atm",
		"withdrawal",
	},
	"fees": {
		"fee", "charge", "service charge", "overdraft", "maintenance",
		"penalty",
	},
	"subscriptions": {
		"subscription", "membership", "monthly", "annual", "renewal",
	},
	"rent": {
		"rent", "lease", "landlord", "property",
	},
	"insurance": {
		"insurance", "premium", "geico", "allstate", "state farm",
	},
}
