package sim

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

// runNamespace scopes the name-based save ids of simulated runs.
var runNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("lifesim.run"))

// uuidFor derives a stable save id from the seed and path, so rerunning a
// batch overwrites its own saves instead of adding new ones.
func uuidFor(seed int64, path model.StartingPath) uuid.UUID {
	return uuid.NewSHA1(runNamespace, []byte(string(path)+":"+strconv.FormatInt(seed, 10)))
}
