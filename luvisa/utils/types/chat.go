// luvisa/utils/types/chat.go
package types

type ChatRequest struct {
	Text string `json:"text"`
}

type ChatResponse struct {
	Reply           string `json:"reply"`
	DetectedEmotion string `json:"detected_emotion"`
}

// Turn is a single transcript entry as returned by the history endpoint.
// Time: "2006-01-02 15:04:05" formatted UTC string.
type Turn struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
	Time    string `json:"time"`
}
