package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var baseURL = "http://localhost:8080"

type seededUser struct {
	ID       string
	Username string
	Email    string
	Token    string
}

func main() {
	gofakeit.Seed(time.Now().UnixNano())
	if v := os.Getenv("SEED_BASE_URL"); v != "" {
		baseURL = v
	}

	// 1. Register a handful of users and keep their tokens.
	users := make([]seededUser, 0, 5)
	for i := 0; i < 5; i++ {
		u := registerUser()
		if u.Token == "" {
			log.Fatal("could not obtain token, aborting seeding")
		}
		users = append(users, u)
	}

	// 2. Everyone follows the first user, the first user follows back.
	for _, u := range users[1:] {
		toggleFollow(u.Token, users[0].ID)
		toggleFollow(users[0].Token, u.ID)
	}

	// 3. Each user posts with hashtags and an occasional mention.
	postIDs := make([]string, 0, len(users))
	for i, u := range users {
		text := gofakeit.Sentence(8) + " #" + gofakeit.Word() + " #golang"
		if i > 0 {
			text += " @" + users[0].Username
		}
		visibility := "public"
		if i%3 == 1 {
			visibility = "followers"
		}
		id := createPost(u.Token, text, visibility)
		if id != "" {
			postIDs = append(postIDs, id)
		}
	}

	// 4. Likes, bookmarks and comments on the first post.
	if len(postIDs) > 0 {
		target := postIDs[0]
		for _, u := range users[1:] {
			toggleLike(u.Token, target)
			addComment(u.Token, target, gofakeit.Sentence(5)+" @"+users[0].Username)
		}
		toggleBookmark(users[1].Token, target)
	}

	// 5. A short conversation between the first two users.
	sendMessage(users[0].Token, users[1].ID, "Hey, "+gofakeit.Sentence(4))
	sendMessage(users[1].Token, users[0].ID, gofakeit.Sentence(4))
	getConversation(users[0].Token, users[1].ID)

	// 6. Read back public feed, profile and notifications.
	listPublicPosts()
	getProfile(users[1].Token, users[0].ID)
	listNotifications(users[0].Token)
	markNotificationsRead(users[0].Token)

	log.Println("seeding done")
}

func registerUser() seededUser {
	payload := map[string]string{
		"name":     gofakeit.Name(),
		"username": strings.ToLower(gofakeit.Username()),
		"email":    gofakeit.Email(),
		"password": "123456",
	}
	data, _ := json.Marshal(payload)
	resp, err := http.Post(baseURL+"/auth/register", "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Println("Error in registerUser:", err)
		return seededUser{}
	}
	defer resp.Body.Close()
	var result struct {
		Token string `json:"token"`
		User  struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	log.Printf("registerUser: %s status: %s", payload["email"], resp.Status)
	return seededUser{
		ID:       result.User.ID,
		Username: result.User.Username,
		Email:    payload["email"],
		Token:    result.Token,
	}
}

func toggleFollow(token, userID string) {
	do("PUT", fmt.Sprintf("%s/users/follow/%s", baseURL, userID), token, nil, "toggleFollow")
}

func createPost(token, text, visibility string) string {
	payload := map[string]string{
		"text":       text,
		"media":      gofakeit.ImageURL(640, 480),
		"visibility": visibility,
	}
	data, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", baseURL+"/posts", bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("Error in createPost:", err)
		return ""
	}
	defer resp.Body.Close()
	var result struct {
		Post struct {
			ID string `json:"id"`
		} `json:"post"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	log.Println("createPost status:", resp.Status)
	return result.Post.ID
}

func toggleLike(token, postID string) {
	do("PUT", fmt.Sprintf("%s/posts/like/%s", baseURL, postID), token, nil, "toggleLike")
}

func toggleBookmark(token, postID string) {
	do("PUT", fmt.Sprintf("%s/posts/bookmark/%s", baseURL, postID), token, nil, "toggleBookmark")
}

func addComment(token, postID, text string) {
	payload := map[string]string{"text": text}
	do("POST", fmt.Sprintf("%s/posts/comment/%s", baseURL, postID), token, payload, "addComment")
}

func sendMessage(token, receiverID, text string) {
	payload := map[string]string{"receiver": receiverID, "text": text}
	do("POST", baseURL+"/messages", token, payload, "sendMessage")
}

func getConversation(token, peerID string) {
	do("GET", fmt.Sprintf("%s/messages/%s", baseURL, peerID), token, nil, "getConversation")
}

func listPublicPosts() {
	resp, err := http.Get(baseURL + "/posts/public")
	if err != nil {
		log.Println("Error in listPublicPosts:", err)
		return
	}
	defer resp.Body.Close()
	log.Println("listPublicPosts status:", resp.Status)
}

func getProfile(token, userID string) {
	do("GET", fmt.Sprintf("%s/users/%s", baseURL, userID), token, nil, "getProfile")
}

func listNotifications(token string) {
	do("GET", baseURL+"/notifications", token, nil, "listNotifications")
}

func markNotificationsRead(token string) {
	do("PUT", baseURL+"/notifications/read", token, nil, "markNotificationsRead")
}

func do(method, url, token string, payload any, name string) {
	var body *bytes.Buffer
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("Error in %s: %v", name, err)
		return
	}
	defer resp.Body.Close()
	log.Printf("%s status: %s", name, resp.Status)
}
