package network

// EventHandler é a interface que conecta a lógica da rede com a lógica do jogo.
// O código de jogo (fora deste pacote) implementa esta interface.
type EventHandler interface {
	// OnConnect é chamado quando um novo cliente se conecta com sucesso.
	OnConnect(c *Client)

	// OnDisconnect é chamado quando um cliente se desconecta, antes do canal
	// de envio dele ser fechado. O handler ainda pode notificar os outros
	// participantes, mas não deve mais enviar nada para o próprio cliente.
	OnDisconnect(c *Client)

	// OnMessage é chamado para cada mensagem recebida de um cliente.
	OnMessage(c *Client, msg Message)
}
