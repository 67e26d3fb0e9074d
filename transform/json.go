package transform

import (
	"encoding/json"
	"log"

	"github.com/vova616/impulse/vect"
)

func (xf Transform) MarshalJSON() ([]byte, error) {
	xfData := struct {
		Position vect.Vect
		Origin   vect.Vect
		Rotation vect.Float
	}{
		Position: xf.Position,
		Origin:   xf.Origin,
		Rotation: xf.Angle(),
	}

	return json.Marshal(&xfData)
}

func (xf *Transform) UnmarshalJSON(data []byte) error {
	xf.SetIdentity()

	xfData := struct {
		Position vect.Vect
		Origin   vect.Vect
		Rotation vect.Float
	}{}

	err := json.Unmarshal(data, &xfData)
	if err != nil {
		log.Printf("Error decoding transform")
		return err
	}

	xf.Position = xfData.Position
	xf.Origin = xfData.Origin
	xf.SetAngle(xfData.Rotation)

	return nil
}
