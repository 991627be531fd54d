package idblaster

import (
	"regexp"

	"github.com/madlabz/idblaster/utils"
)

// This approach aims to simplify the syntax of combining filters.
// For example:
//   filter := Filter.And(Filter.And(Filter)).Or(Filter.Not())
// Instead of:
//   filter := Or(And(Filter, And(Filter, Filter)), Not(Filter)) (excluding the package name)
//
// Since Go does not support type inheritance nor method declaration with multiple receivers,
// everything needs to be explicitly declared.

// Filter is an interface that defines the methods for filtering events.
type Filter interface {
	Check(*Event) bool // Check evaluates if the given event passes the filter conditions.
	And(Filter) Filter // And returns a new filter that combines the current filter with another using logical AND.
	Or(Filter) Filter  // Or returns a new filter that combines the current filter with another using logical OR.
	Xor(Filter) Filter // Xor returns a new filter that combines the current filter with another using logical XOR.
	Not() Filter       // Not returns a new filter that negates the current filter using logical NOT.
}

const (
	// CombineFilterAnd combines filter using logical AND.
	CombineFilterAnd int = iota
	// CombineFilterOr combines filter using logical OR.
	CombineFilterOr
	// CombineFilterXor combines filter using logical XOR.
	CombineFilterXor
)

// CombineFilter is a struct that represents the logical combination of two filters.
type CombineFilter struct {
	Left  Filter // Left represents the first filter to be combined.
	Right Filter // Right represents the second filter to be combined.
	Mode  int    // Mode specifies the combination mode: 0 for AND, 1 for OR, and 2 for XOR.
}

// Check combines the results of the left and right filters according to Mode.
func (f *CombineFilter) Check(event *Event) bool {
	switch f.Mode {
	case CombineFilterAnd:
		return f.Left.Check(event) && f.Right.Check(event)
	case CombineFilterOr:
		return f.Left.Check(event) || f.Right.Check(event)
	case CombineFilterXor:
		return f.Left.Check(event) != f.Right.Check(event)
	default:
		return false
	}
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *CombineFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *CombineFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *CombineFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *CombineFilter) Not() Filter {
	return &NotFilter{f}
}

// NotFilter is a struct that represents the logical NOT of a filter.
type NotFilter struct {
	Base Filter // Base represents the filter to be negated using logical NOT.
}

// Check returns the logical negation of the filter's result.
func (f *NotFilter) Check(event *Event) bool {
	return !f.Base.Check(event)
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *NotFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *NotFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *NotFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *NotFilter) Not() Filter {
	return &NotFilter{f}
}

// UserFilter represents a filter for users.
type UserFilter struct {
	Users []int64 // Users is a list of user IDs to filter events based on user information.
}

// Check checks if the event's user is in the filter's list of users.
func (f *UserFilter) Check(event *Event) bool {
	if event.User == nil {
		return false
	}
	return utils.Contains(f.Users, event.User.ID)
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *UserFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *UserFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *UserFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *UserFilter) Not() Filter {
	return &NotFilter{f}
}

// NewUserFilter returns a new `UserFilter`.
func NewUserFilter(userIDs ...int64) Filter {
	return &UserFilter{Users: userIDs}
}

// ChatFilter represents a filter for chats.
type ChatFilter struct {
	Chats []int64 // Chats is a list of chat IDs to filter events based on chat information.
}

// Check checks if the event's chat is in the filter's list of chats.
func (f *ChatFilter) Check(event *Event) bool {
	if event.Chat == nil {
		return false
	}
	return utils.Contains(f.Chats, event.Chat.ID)
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *ChatFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *ChatFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *ChatFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *ChatFilter) Not() Filter {
	return &NotFilter{f}
}

// NewChatFilter returns a new `ChatFilter`.
func NewChatFilter(chatIDs ...int64) Filter {
	return &ChatFilter{Chats: chatIDs}
}

// ChatTypeFilter represents a filter for chat types ("private", "group", ...).
type ChatTypeFilter struct {
	Types []string // Types is a list of accepted chat types.
}

// Check checks if the event's chat type is in the filter's list of types.
func (f *ChatTypeFilter) Check(event *Event) bool {
	if event.Chat == nil {
		return false
	}
	return utils.Contains(f.Types, event.Chat.Type)
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *ChatTypeFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *ChatTypeFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *ChatTypeFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *ChatTypeFilter) Not() Filter {
	return &NotFilter{f}
}

// NewChatTypeFilter returns a new `ChatTypeFilter`.
func NewChatTypeFilter(chatTypes ...string) Filter {
	return &ChatTypeFilter{Types: chatTypes}
}

// RegexFilter represents a filter based on a regular expression pattern.
// It matches the message text of message and command events and the data of callback events.
type RegexFilter struct {
	Pattern *regexp.Regexp // Pattern represents the regular expression pattern used for filtering.
}

// Check checks if the event matches the regular expression pattern.
func (f *RegexFilter) Check(event *Event) bool {
	if f.Pattern == nil {
		return false
	}
	switch event.Type {
	case OnMessage, OnCommand, OnForward:
		return event.Message != nil && f.Pattern.MatchString(event.Message.Text)
	case OnCallback:
		return event.Callback != nil && f.Pattern.MatchString(event.Callback.Data)
	}
	return false
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *RegexFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *RegexFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *RegexFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *RegexFilter) Not() Filter {
	return &NotFilter{f}
}

// NewRegexFilter returns a new `RegexFilter`.
func NewRegexFilter(pattern string) Filter {
	return &RegexFilter{Pattern: regexp.MustCompile(pattern)}
}

// FuncFilter adapts a plain predicate into a Filter.
type FuncFilter struct {
	Func func(*Event) bool
}

// Check returns the result of the predicate.
func (f *FuncFilter) Check(event *Event) bool {
	return f.Func != nil && f.Func(event)
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *FuncFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *FuncFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *FuncFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *FuncFilter) Not() Filter {
	return &NotFilter{f}
}

// NewFuncFilter returns a new `FuncFilter`.
func NewFuncFilter(fun func(*Event) bool) Filter {
	return &FuncFilter{Func: fun}
}
