package models

import "time"

// Follow is a directed edge follower -> followee. Edges to private accounts
// start pending and become visible to counts only once accepted.
type Follow struct {
	FollowerID uint      `gorm:"primaryKey;autoIncrement:false;index:idx_follows_follower_created,priority:1" json:"follower_id"`
	FolloweeID uint      `gorm:"primaryKey;autoIncrement:false;index:idx_follows_followee_created,priority:1" json:"followee_id"`
	Accepted   bool      `gorm:"not null;default:false" json:"accepted"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_follows_followee_created,priority:2;index:idx_follows_follower_created,priority:2" json:"created_at"`
	Follower   User      `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followee   User      `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE" json:"-"`
}
