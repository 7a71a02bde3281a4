package network

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	// Tempo para aguardar por uma escrita na conexão.
	writeWait = 10 * time.Second

	// Tempo máximo para aguardar por uma resposta de pong do cliente.
	pongWait = 60 * time.Second

	// Frequência com que enviamos pings para o cliente. Deve ser menor que pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Tamanho do buffer do canal de saída de cada cliente.
	sendBufferSize = 256
)

// Client é a representação de um jogador conectado do ponto de vista do
// servidor. Ele agrupa a conexão, um handle opaco e os canais de comunicação.
type Client struct {
	// Handle opaco e único por conexão. É a identidade do participante
	// para o resto do sistema; não carrega nada do jogador.
	id string

	// A conexão WebSocket real com o jogador.
	conn *websocket.Conn

	// Uma referência ao Hub central. O cliente usa isso para se (des)registrar.
	hub *Hub

	// Canal bufferizado para mensagens de saída. O buffer evita que a lógica
	// do jogo bloqueie se o cliente estiver lento para consumir.
	send chan Message
}

func newClient(conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		id:   uuid.NewString(),
		conn: conn,
		hub:  hub,
		send: make(chan Message, sendBufferSize),
	}
}

// ID retorna o handle opaco da conexão.
func (c *Client) ID() string {
	return c.id
}

// Send expõe o canal de saída do cliente para a lógica do jogo.
func (c *Client) Send() chan<- Message {
	return c.send
}

func (c *Client) readLoop() {
	// Garante que a limpeza ocorrerá quando o loop terminar.
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	// Cada pong recebido renova o deadline de leitura, mantendo a conexão viva.
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			// Desconexões normais não merecem log; as inesperadas sim.
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Str("client", c.id).Err(err).Msg("Unexpected close on client connection")
			}
			break
		}

		c.hub.incoming <- clientMessage{client: c, msg: msg}
	}
}

// writeLoop bombeia mensagens do canal 'send' do cliente para a conexão WebSocket.
func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			// O canal 'send' foi fechado pelo Hub: o cliente foi desregistrado.
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				log.Debug().Str("client", c.id).Err(err).Msg("Write failed, dropping connection")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return // Se o ping falhar, a conexão está morta.
			}
		}
	}
}
