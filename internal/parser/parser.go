// Package parser turns free-text expense input like
// "500rs buy ice cream from meezan bank account" into a structured record.
package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/rizqly/rizqly/internal/models"
)

// ParsedExpense represents a parsed expense from user input.
type ParsedExpense struct {
	Amount      decimal.Decimal
	Description string
	Category    string
	BankAccount string
	RawInput    string
}

// amountRegex matches amounts like "500", "500rs", "rs. 500", "1,200.50 rupees".
var amountRegex = regexp.MustCompile(`(?i)(?:rs\.?\s*)?(\d+(?:,\d{3})*(?:\.\d{1,2})?)\s*(?:rs\.?|rupees?)?`)

// accountRule maps a keyword substring to a payment-source label.
// Rules are evaluated in order; the first keyword present wins.
type accountRule struct {
	keyword string
	account string
}

var accountRules = []accountRule{
	{"meezan", "Meezan Bank"},
	{"hbl", "HBL"},
	{"habib", "HBL"},
	{"ubl", "UBL"},
	{"mcb", "MCB"},
	{"allied", "Allied Bank"},
	{"askari", "Askari Bank"},
	{"faysal", "Faysal Bank"},
	{"jazzcash", "JazzCash"},
	{"jazz", "JazzCash"},
	{"easypaisa", "Easypaisa"},
	{"easy", "Easypaisa"},
	{"nayapay", "NayaPay"},
	{"sadapay", "SadaPay"},
	{"bank al habib", "Bank Al Habib"},
	{"alhabib", "Bank Al Habib"},
	{"alfalah", "Bank Alfalah"},
	{"standard chartered", "Standard Chartered"},
	{"sc", "Standard Chartered"},
	{"cash", "Cash"},
}

// categoryRule maps a category to its trigger keywords. Rules are evaluated
// in order; the first category with any keyword present wins, so earlier
// entries take priority when a text matches several categories.
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{"Food", []string{
		"food", "eat", "lunch", "dinner", "breakfast", "biryani", "pizza",
		"burger", "chai", "coffee", "ice cream", "icecream", "restaurant",
		"dhaba", "hotel", "snacks", "samosa", "paratha", "nihari", "haleem",
		"karahi",
	}},
	{"Transport", []string{
		"uber", "careem", "petrol", "fuel", "cng", "bus", "taxi", "rickshaw",
		"metro", "transport", "travel", "fare",
	}},
	{"Shopping", []string{
		"clothes", "shoes", "shopping", "mall", "shirt", "jeans", "dress",
		"hoodie", "buy",
	}},
	{"Bills", []string{
		"bill", "electricity", "gas", "water", "internet", "wifi", "mobile",
		"phone", "recharge", "fesco", "lesco", "ssgc", "sngpl",
	}},
	{"Entertainment", []string{
		"movie", "netflix", "spotify", "youtube", "game", "gaming",
		"playstation", "cinema", "concert",
	}},
	{"Health", []string{
		"medicine", "doctor", "hospital", "pharmacy", "clinic", "medical",
		"gym", "fitness",
	}},
	{"Education", []string{
		"books", "course", "tuition", "fee", "university", "college",
		"school", "academy",
	}},
	{"Groceries", []string{
		"grocery", "vegetables", "fruits", "milk", "bread", "eggs",
		"supermarket", "mart", "store",
	}},
}

// Description cleanup patterns, applied in order to the raw input.
var (
	stripAmountRegex       = regexp.MustCompile(`(?i)\d+(?:,\d{3})*(?:\.\d{1,2})?\s*(?:rs\.?|rupees?)?`)
	stripPrefixAmountRegex = regexp.MustCompile(`(?i)(?:rs\.?\s*)\d+(?:,\d{3})*(?:\.\d{1,2})?`)
	stripSourcePhraseRegex = regexp.MustCompile(`(?i)\b(?:from|via|through|using)\s+\w+\s*(?:bank|account)?`)
	stripAccountWordRegex  = regexp.MustCompile(`(?i)\b(?:meezan|hbl|ubl|mcb|jazzcash|easypaisa|sadapay|nayapay|cash)\b`)
	stripBankWordRegex     = regexp.MustCompile(`(?i)\b(?:bank|account)\b`)
	whitespaceRegex        = regexp.MustCompile(`\s+`)
)

// Parse parses free-text expense input.
// Returns nil if no positive amount can be extracted.
func Parse(input string) *ParsedExpense {
	rawInput := strings.TrimSpace(input)
	if rawInput == "" {
		return nil
	}

	lowerInput := strings.ToLower(rawInput)

	match := amountRegex.FindStringSubmatch(lowerInput)
	if match == nil {
		return nil
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return nil
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	category := detectCategory(lowerInput)

	return &ParsedExpense{
		Amount:      amount,
		Description: extractDescription(rawInput, category),
		Category:    category,
		BankAccount: detectAccount(lowerInput),
		RawInput:    rawInput,
	}
}

// detectAccount finds the payment source mentioned in the input,
// defaulting to Cash.
func detectAccount(lowerInput string) string {
	for _, rule := range accountRules {
		if strings.Contains(lowerInput, rule.keyword) {
			return rule.account
		}
	}
	return models.DefaultBankAccount
}

// detectCategory classifies the input against the keyword rules,
// defaulting to Other.
func detectCategory(lowerInput string) string {
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowerInput, keyword) {
				return rule.category
			}
		}
	}
	return models.CategoryOther
}

// extractDescription strips amount and payment-source references from the
// input. When fewer than 3 characters remain, the category name is used
// instead. The first letter is capitalized.
func extractDescription(rawInput, category string) string {
	description := stripAmountRegex.ReplaceAllString(rawInput, "")
	description = stripPrefixAmountRegex.ReplaceAllString(description, "")
	description = stripSourcePhraseRegex.ReplaceAllString(description, "")
	description = stripAccountWordRegex.ReplaceAllString(description, "")
	description = stripBankWordRegex.ReplaceAllString(description, "")
	description = whitespaceRegex.ReplaceAllString(description, " ")
	description = strings.TrimSpace(description)

	if len(description) < 3 {
		description = category
	}

	return capitalize(description)
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
