package actionconfig

import (
	"sync/atomic"

	"github.com/dshills/actionmap/internal/input/binding"
	"github.com/dshills/actionmap/internal/logging"
)

var boundaryLogger atomic.Pointer[logging.Logger]

// SetLogger sets the logger used to report invalid boundary calls. A nil
// logger restores the process default.
func SetLogger(l *logging.Logger) {
	boundaryLogger.Store(l)
}

func logger() *logging.Logger {
	if l := boundaryLogger.Load(); l != nil {
		return l
	}
	return logging.Default().WithComponent("actionconfig")
}

// CloneBoolAction returns a deep copy of c.
func CloneBoolAction(c *BoolActionConfig) *BoolActionConfig {
	return cloneAction("CloneBoolAction", c)
}

// DestroyBoolAction releases everything owned by c.
func DestroyBoolAction(c *BoolActionConfig) {
	destroyAction("DestroyBoolAction", c)
}

// CloneFloatAction returns a deep copy of c.
func CloneFloatAction(c *FloatActionConfig) *FloatActionConfig {
	return cloneAction("CloneFloatAction", c)
}

// DestroyFloatAction releases everything owned by c.
func DestroyFloatAction(c *FloatActionConfig) {
	destroyAction("DestroyFloatAction", c)
}

// CloneVec2Action returns a deep copy of c.
func CloneVec2Action(c *Vec2ActionConfig) *Vec2ActionConfig {
	return cloneAction("CloneVec2Action", c)
}

// DestroyVec2Action releases everything owned by c.
func DestroyVec2Action(c *Vec2ActionConfig) {
	destroyAction("DestroyVec2Action", c)
}

// CloneActionSet returns a deep copy of c.
func CloneActionSet(c *ActionSetConfig) *ActionSetConfig {
	if c == nil {
		logger().Error("CloneActionSet: nil action set config")
		return nil
	}
	return c.Clone()
}

// DestroyActionSet releases everything owned by c.
func DestroyActionSet(c *ActionSetConfig) {
	if c == nil {
		logger().Error("DestroyActionSet: nil action set config")
		return
	}
	c.Destroy()
}

// CloneSystem returns a deep copy of c.
func CloneSystem(c *SystemConfig) *SystemConfig {
	if c == nil {
		logger().Error("CloneSystem: nil system config")
		return nil
	}
	return c.Clone()
}

// DestroySystem releases everything owned by c.
func DestroySystem(c *SystemConfig) {
	if c == nil {
		logger().Error("DestroySystem: nil system config")
		return
	}
	c.Destroy()
}

func cloneAction[B binding.Enum](op string, c *ActionConfig[B]) *ActionConfig[B] {
	if c == nil {
		logger().Error("%s: nil action config", op)
		return nil
	}
	return c.Clone()
}

func destroyAction[B binding.Enum](op string, c *ActionConfig[B]) {
	if c == nil {
		logger().Error("%s: nil action config", op)
		return
	}
	c.Destroy()
}
