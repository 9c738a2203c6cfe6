package grid

import (
	"encoding/json"
	"fmt"
	"io"
)

type jsonMessage struct {
	Name string `json:"name"`
	Info struct {
		Width      int     `json:"width"`
		Height     int     `json:"height"`
		Resolution float64 `json:"resolution"`
	} `json:"info"`
	Data []int `json:"data"`
}

// DecodeJSON reads a message of the form
// {"name": ..., "info": {"width": ..., "height": ...}, "data": [...]}.
// Data values are truncated to 8 bits, so 255 and -1 are the same cell.
func DecodeJSON(r io.Reader) (*Message, error) {
	var jm jsonMessage
	if err := json.NewDecoder(r).Decode(&jm); err != nil {
		return nil, fmt.Errorf("grid: decode: %w", err)
	}
	msg := &Message{
		Name:       jm.Name,
		Info:       Info{Width: jm.Info.Width, Height: jm.Info.Height, Resolution: jm.Info.Resolution},
		Data:       FromBytes(FromIntegers(jm.Data)),
		Generation: 1,
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}
