package camera

import (
	"context"
	"fmt"

	"github.com/aidapov/povctl/internal/params"
)

// Per-stream URL fields inside venc.main / venc.sub.
const (
	FieldRTSPURL   = "rtspUrl"
	FieldRTMPURL   = "rtmpUrl"
	FieldFLVURL    = "httpFlvUrl"
	FieldWebRTCURL = "webRtcUrl"
)

// StreamURLs holds every playback URL of one encoder stream. Empty strings
// mean the camera did not return that URL.
type StreamURLs struct {
	Stream params.Stream `json:"stream"`
	RTSP   string        `json:"rtsp,omitempty"`
	RTMP   string        `json:"rtmp,omitempty"`
	FLV    string        `json:"flv,omitempty"`
	WebRTC string        `json:"webrtc,omitempty"`
}

// getStream requests venc with exactly one of main/sub set to true and
// returns the selected stream's object.
func (s *Session) getStream(ctx context.Context, stream params.Stream) (map[string]any, params.Stream, error) {
	if stream == "" {
		stream = params.StreamMain
	}
	if stream != params.StreamMain && stream != params.StreamSub {
		return nil, stream, s.invalid("stream", fmt.Errorf("%q: must be main or sub: %w", stream, params.ErrUnknownSymbol))
	}

	resp, err := s.Request(ctx, FuncGet, map[string]any{
		subsystemVenc: map[string]any{
			string(params.StreamMain): stream == params.StreamMain,
			string(params.StreamSub):  stream == params.StreamSub,
		},
	})
	if err != nil || resp == nil {
		return nil, stream, err
	}
	return resp.Object(subsystemVenc, string(stream)), stream, nil
}

func (s *Session) streamURL(ctx context.Context, stream params.Stream, field string) (string, bool, error) {
	obj, _, err := s.getStream(ctx, stream)
	if err != nil || obj == nil {
		return "", false, err
	}
	url, ok := obj[field].(string)
	return url, ok, nil
}

// GetRTSPURL returns the RTSP URL of stream ("" selects main).
func (s *Session) GetRTSPURL(ctx context.Context, stream params.Stream) (string, bool, error) {
	return s.streamURL(ctx, stream, FieldRTSPURL)
}

// GetRTMPURL returns the RTMP URL of stream ("" selects main).
func (s *Session) GetRTMPURL(ctx context.Context, stream params.Stream) (string, bool, error) {
	return s.streamURL(ctx, stream, FieldRTMPURL)
}

// GetFLVURL returns the HTTP-FLV URL of stream ("" selects main).
func (s *Session) GetFLVURL(ctx context.Context, stream params.Stream) (string, bool, error) {
	return s.streamURL(ctx, stream, FieldFLVURL)
}

// GetWebRTCURL returns the WebRTC URL of stream ("" selects main).
func (s *Session) GetWebRTCURL(ctx context.Context, stream params.Stream) (string, bool, error) {
	return s.streamURL(ctx, stream, FieldWebRTCURL)
}

// GetStreamURLs reads all four URLs of stream in one request. It returns nil
// when the camera returned nothing for the stream.
func (s *Session) GetStreamURLs(ctx context.Context, stream params.Stream) (*StreamURLs, error) {
	obj, selected, err := s.getStream(ctx, stream)
	if err != nil || obj == nil {
		return nil, err
	}

	str := func(key string) string {
		v, _ := obj[key].(string)
		return v
	}

	return &StreamURLs{
		Stream: selected,
		RTSP:   str(FieldRTSPURL),
		RTMP:   str(FieldRTMPURL),
		FLV:    str(FieldFLVURL),
		WebRTC: str(FieldWebRTCURL),
	}, nil
}
