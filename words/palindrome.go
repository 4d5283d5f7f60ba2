package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// IsPalindrome checks if phrase reads the same backwards, ignoring everything
// but letters and ignoring case. A phrase without any letters is a palindrome.
//
//     IsPalindrome("A man, a plan, a canal: Panama")   // true
//
func IsPalindrome(phrase string) bool {
	letters := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1 // drop
	}, phrase)
	folded := []rune(cases.Fold().String(letters))
	for i, j := 0, len(folded)-1; i < j; i, j = i+1, j-1 {
		if folded[i] != folded[j] {
			return false
		}
	}
	return true
}
