package host

import (
	"github.com/gorilla/websocket"

	"ember/pkg/value"
)

func registerWS(r *Registry) {
	r.Register("ws.connect", wsConnect)
	r.Register("ws.send", wsSend)
	r.Register("ws.receive", wsReceive)
	r.Register("ws.close", wsClose)
}

func connArg(args []value.Value, i int) (*websocket.Conn, *value.Error) {
	n, ok := args[i].(*value.Native)
	if !ok {
		return nil, value.Errorf("argument %d must be a websocket connection, got %s", i+1, args[i].Kind())
	}
	conn, ok := n.Value.(*websocket.Conn)
	if !ok {
		return nil, value.Errorf("argument %d must be a websocket connection", i+1)
	}
	return conn, nil
}

func wsConnect(args []value.Value) value.Value {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	url, errv := stringArg(args, 0)
	if errv != nil {
		return errv
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Errorf("websocket dial %s failed: %s", url, err)
		return value.Errorf("websocket connect failed: %s", err)
	}
	return &value.Native{Value: conn}
}

func wsSend(args []value.Value) value.Value {
	if len(args) != 2 {
		return wrongArgs(len(args), 2)
	}
	conn, errv := connArg(args, 0)
	if errv != nil {
		return errv
	}
	message, errv := stringArg(args, 1)
	if errv != nil {
		return errv
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
		return value.Errorf("websocket send failed: %s", err)
	}
	return value.TRUE
}

func wsReceive(args []value.Value) value.Value {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	conn, errv := connArg(args, 0)
	if errv != nil {
		return errv
	}
	msgType, msg, err := conn.ReadMessage()
	if err != nil {
		return value.Errorf("websocket receive failed: %s", err)
	}
	if msgType != websocket.TextMessage {
		return value.Errorf("unexpected message type: %d", msgType)
	}
	return &value.String{Value: string(msg)}
}

func wsClose(args []value.Value) value.Value {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	conn, errv := connArg(args, 0)
	if errv != nil {
		return errv
	}
	if err := conn.Close(); err != nil {
		return value.Errorf("websocket close failed: %s", err)
	}
	return value.TRUE
}
