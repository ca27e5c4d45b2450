package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mnehpets/onerpc/jsonrpc"
	"github.com/rs/zerolog"
)

type SubtractParams struct {
	Minuend    int `json:"minuend"`
	Subtrahend int `json:"subtrahend"`
}

// messages are taken from the examples in the JSON-RPC 2.0 specification.
var messages = []string{
	`{"jsonrpc": "2.0", "method": "subtract", "params": {"minuend": 42, "subtrahend": 23}, "id": 3}`,
	`{"jsonrpc": "2.0", "method": "subtract", "params": {"minuend": 1, "subtrahend": 2}, "id": null}`,
	`{"jsonrpc": "2.0", "method": "update", "params": [1,2,3,4,5]}`,
	`{"jsonrpc": "2.0", "method": "foobar", "id": "1"}`,
	`{"jsonrpc": "2.0", "method": 1, "params": "bar"}`,
	`{"jsonrpc": "2.0", "result": 19, "id": 1}`,
}

func main() {
	if err := godotenv.Load(); err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Debug().Msg("No .env file found, using environment variables")
	}

	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	advisor := jsonrpc.WithAdvisor(jsonrpc.ZerologAdvisor(log))

	for _, text := range messages {
		msg, err := jsonrpc.DecodeMessage([]byte(text), advisor)
		if err != nil {
			log.Error().Err(err).Str("text", text).Msg("rejected")
			reply := jsonrpc.NewResponseBuilder().ID(jsonrpc.NullID()).Error().InvalidRequest().Build()
			printReply(log, reply)
			continue
		}

		switch m := msg.(type) {
		case jsonrpc.Request:
			printReply(log, answer(m, advisor))
		case jsonrpc.Notification:
			log.Info().Str("method", m.Method).Msg("notification, no reply")
		case jsonrpc.Response:
			result, _ := m.Result()
			log.Info().Stringer("id", m.ID).RawJSON("result", result).Msg("response")
		}
	}
}

func answer(req jsonrpc.Request, advisor jsonrpc.Option) jsonrpc.Response {
	if req.Method != "subtract" {
		return jsonrpc.NewResponseBuilder(advisor).ID(req.ID).Error().MethodNotFound().Build()
	}
	var p SubtractParams
	if req.Params == nil || !req.Params.IsObject() || req.Params.Decode(&p) != nil {
		return jsonrpc.NewResponseBuilder(advisor).ID(req.ID).Error().InvalidParams().Build()
	}
	b, err := jsonrpc.NewResponseBuilder(advisor).ID(req.ID).Success().Result(p.Minuend - p.Subtrahend)
	if err != nil {
		return jsonrpc.NewResponseBuilder(advisor).ID(req.ID).Error().InternalError().Build()
	}
	return b.Build()
}

func printReply(log zerolog.Logger, resp jsonrpc.Response) {
	out, err := resp.Encode()
	if err != nil {
		log.Error().Err(err).Msg("encode reply")
		return
	}
	os.Stdout.Write(append(out, '\n'))
}
