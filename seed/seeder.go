package seed

import (
	"errors"
	"log"

	"Socialnet/models"
	"Socialnet/services"

	"gorm.io/gorm"
)

type demoUser struct {
	Username  string
	IsPrivate bool
	Bio       string
}

var users = []demoUser{
	{Username: "steven", Bio: "Here for the long threads."},
	{Username: "martin", IsPrivate: true, Bio: "Friends only."},
	{Username: "lovelace"},
}

var posts = []struct {
	Owner   string
	Title   string
	Content string
}{
	{Owner: "steven", Title: "Hello world", Content: "Lorem ipsum dolor sit amet, consectetur adipiscing elit."},
	{Owner: "martin", Title: "Private notes", Content: "Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."},
	{Owner: "lovelace", Title: "Engines", Content: "Ut enim ad minim veniam, quis nostrud exercitation ullamco."},
}

// DemoPassword is shared by every seeded account.
const DemoPassword = "Password1!"

// Load inserts a small demo graph. Users that already exist are left alone,
// so running it twice is harmless.
func Load(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		ids := make(map[string]uint, len(users))
		created := make(map[string]bool, len(users))

		for _, u := range users {
			existing, err := services.FindUserByUsername(tx, u.Username)
			switch {
			case err == nil:
				ids[u.Username] = existing.ID
				continue
			case !errors.Is(err, services.ErrUserNotFound):
				return err
			}

			user := &models.User{
				Username:  u.Username,
				Email:     u.Username + "@example.com",
				Password:  DemoPassword,
				IsPrivate: u.IsPrivate,
			}
			if u.Bio != "" {
				bio := u.Bio
				user.Bio = &bio
			}
			if _, err := services.CreateUser(tx, user); err != nil {
				return err
			}
			ids[u.Username] = user.ID
			created[u.Username] = true
			log.Printf("[seed] created user %s", u.Username)
		}

		for _, p := range posts {
			if !created[p.Owner] {
				continue
			}
			if _, err := services.CreatePost(tx, ids[p.Owner], p.Title, p.Content); err != nil {
				return err
			}
		}

		// steven follows lovelace outright and asks to follow martin.
		edges := [][2]string{{"steven", "lovelace"}, {"steven", "martin"}, {"lovelace", "steven"}}
		for _, e := range edges {
			if _, err := services.Follow(tx, ids[e[0]], ids[e[1]]); err != nil && !errors.Is(err, services.ErrFollowAlreadyExists) {
				return err
			}
		}
		return nil
	})
}
