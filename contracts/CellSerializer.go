package contracts

type CellSerializer interface {
	Marshal(cellId string, formula string) []byte
	Unmarshal([]byte) (cellId string, formula string, err error)
}
