package services

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchUsers matches usernames by case-insensitive substring. Exact matches
// come first, then prefix matches, then the rest; each tier is alphabetical.
// An empty query lists everyone alphabetically.
func SearchUsers(tx *gorm.DB, viewerID uint, query string, limit int) ([]UserSummary, error) {
	results := []UserSummary{}
	err := matchUsernames(selectUserSummaries(tx, viewerID), query).
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ListFollowers lists accepted followers of the user named username.
func ListFollowers(tx *gorm.DB, viewerID uint, username string, page Page, search string) ([]UserSummary, error) {
	target, err := ResolveTargetUser(tx, viewerID, username)
	if err != nil {
		return nil, err
	}
	query := selectUserSummaries(tx, viewerID).
		Joins("JOIN follows edge ON edge.follower_id = users.id").
		Where("edge.followee_id = ? AND edge.accepted = ?", target.ID, true)
	return listEdgeUsers(query, page, search)
}

// ListFollowing lists users the named user follows through accepted edges.
func ListFollowing(tx *gorm.DB, viewerID uint, username string, page Page, search string) ([]UserSummary, error) {
	target, err := ResolveTargetUser(tx, viewerID, username)
	if err != nil {
		return nil, err
	}
	query := selectUserSummaries(tx, viewerID).
		Joins("JOIN follows edge ON edge.followee_id = users.id").
		Where("edge.follower_id = ? AND edge.accepted = ?", target.ID, true)
	return listEdgeUsers(query, page, search)
}

func listEdgeUsers(query *gorm.DB, page Page, search string) ([]UserSummary, error) {
	results := []UserSummary{}
	err := matchUsernames(query, search).
		Limit(page.Limit).
		Offset(page.Offset).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// matchUsernames filters by substring and applies the tiered ordering.
func matchUsernames(query *gorm.DB, search string) *gorm.DB {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return query.Order("users.username ASC")
	}
	escaped := likeEscaper.Replace(needle)
	return query.
		Where(`lower(users.username) LIKE ? ESCAPE '\'`, "%"+escaped+"%").
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL: `CASE WHEN lower(users.username) = ? THEN 0 ` +
				`WHEN lower(users.username) LIKE ? ESCAPE '\' THEN 1 ` +
				`ELSE 2 END, users.username ASC`,
			Vars:               []interface{}{needle, escaped + "%"},
			WithoutParentheses: true,
		}})
}
