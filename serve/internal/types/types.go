package types

type ErrorResponse struct {
	Message string `json:"message"`
}

type CreateResultReq struct {
	Mode         string  `json:"mode,options=pvp|pvc"`
	GridSize     int     `json:"gridSize,range=[3:12]"`
	Player1Score int     `json:"player1Score,range=[0:144]"`
	Player2Score int     `json:"player2Score,range=[0:144]"`
	Winner       *string `json:"winner,optional"`
	Player1Name  string  `json:"player1Name,optional"`
	Player2Name  string  `json:"player2Name,optional"`
}

type GameResult struct {
	Id           string  `json:"id"`
	Mode         string  `json:"mode"`
	GridSize     int     `json:"gridSize"`
	Player1Score int     `json:"player1Score"`
	Player2Score int     `json:"player2Score"`
	Player1Name  string  `json:"player1Name"`
	Player2Name  string  `json:"player2Name"`
	Winner       *string `json:"winner"`
	CreatedAt    string  `json:"createdAt"`
}

type CreateGameReq struct {
	Mode        string `json:"mode,options=pvp|pvc"`
	GridSize    int    `json:"gridSize,range=[3:12]"`
	Player1Name string `json:"player1Name,optional"`
	Player2Name string `json:"player2Name,optional"`
}

type GameReq struct {
	Id string `path:"id"`
}

type MoveReq struct {
	Id          string `path:"id"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Orientation string `json:"orientation,options=h|v"`
	Player      int    `json:"player,options=1|2"`
}

type Edge struct {
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Orientation string `json:"orientation"`
	Owner       int    `json:"owner"`
}

type Cell struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Owner int `json:"owner"`
}

type Game struct {
	Id            string  `json:"id"`
	Mode          string  `json:"mode"`
	GridSize      int     `json:"gridSize"`
	State         string  `json:"state"`
	CurrentPlayer int     `json:"currentPlayer"`
	Player1Score  int     `json:"player1Score"`
	Player2Score  int     `json:"player2Score"`
	Player1Name   string  `json:"player1Name"`
	Player2Name   string  `json:"player2Name"`
	Moves         int     `json:"moves"`
	Edges         []Edge  `json:"edges"`
	Cells         []Cell  `json:"cells"`
	Winner        *string `json:"winner"`
}

type MoveResp struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	Cells    []Cell `json:"cells"`
	Game     Game   `json:"game"`
}
