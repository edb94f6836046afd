// Package fulltext scores how well a query matches a set of text parts.
//
// The scorer is deliberately naive: both sides are split on spaces into
// lowercase tokens, and every query token is compared with every part token.
// Earlier query tokens weigh more than later ones.
//
// # Scoring
//
// For a query of n tokens the first token is weighted 2^(n-1), and the weight
// halves for every following token. Each comparison of a query token q with a
// part token p adds, times the weight:
//   - 10000 when q equals p
//   - 5000 when p starts with q
//   - 1000 when p contains q
//   - the similarity percentage of q and p, when it reaches the threshold
//
// An empty query scores 1.0 so unfiltered listings keep every item.
//
// # Usage
//
//	score := fulltext.Make(user.FirstName, user.LastName, user.Email).Search("jane doe")
//
//	ranked := fulltext.Rank(users, func(u User) []any {
//	    return []any{u.FirstName, u.LastName}
//	}, query)
package fulltext
