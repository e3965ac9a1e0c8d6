package repository

import (
	"errors"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
)

func encodeState(profile *entity.Profile, data *entity.AppData) (p []byte, d []byte, err error) {
	if profile == nil || data == nil {
		return nil, nil, errors.New("encoding state error: nil record")
	}
	p, err = sonic.ConfigStd.Marshal(profile)
	if err != nil {
		return nil, nil, errors.New("encoding profile error: " + err.Error())
	}
	d, err = sonic.ConfigStd.Marshal(data)
	if err != nil {
		return nil, nil, errors.New("encoding app data error: " + err.Error())
	}
	return p, d, nil
}

// decodeState turns raw records into State. Missing records give ErrNoState,
// undecodable ones ErrCorruptState joined with the decoder error.
func decodeState(p, d []byte) (*entity.State, error) {
	if len(p) == 0 || len(d) == 0 {
		return nil, errorvalues.ErrNoState
	}
	var st entity.State
	if err := sonic.ConfigStd.Unmarshal(p, &st.Profile); err != nil {
		return nil, errors.Join(errorvalues.ErrCorruptState, err)
	}
	if err := sonic.ConfigStd.Unmarshal(d, &st.Data); err != nil {
		return nil, errors.Join(errorvalues.ErrCorruptState, err)
	}
	if st.Data.Logs == nil {
		st.Data.Logs = []entity.LogEntry{}
	}
	if st.Data.Goals == nil {
		st.Data.Goals = []entity.Goal{}
	}
	return &st, nil
}
