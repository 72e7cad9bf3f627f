/*
 * @Author: thepoy
 * @Email: thepoy@163.com
 * @File Name: tools.go
 * @Created: 2021-07-23 14:55:04
 * @Modified: 2023-04-01 16:20:31
 */

package tools

// Trim removes every leading and trailing rune of s that appears in chars.
func Trim(s string, chars string) string {
	set := make(map[rune]bool)
	for _, c := range chars {
		set[c] = true
	}

	runes := []rune(s)
	start, end := 0, len(runes)
	for start < end && set[runes[start]] {
		start++
	}
	for end > start && set[runes[end-1]] {
		end--
	}
	return string(runes[start:end])
}

// Strip removes blanks on both sides: spaces, newlines, carriage
// returns, tabs and full-width spaces.
func Strip(src string) string {
	return Trim(src, " \r\n\t　")
}
