package ecs

import "reflect"

// typeOf 返回类型参数 T 对应的 reflect.Type
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 以泛型方式获取组件，省去调用方的类型断言
//
// 示例:
//
//	frame, ok := ecs.GetComponent[*components.FrameComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 以泛型方式检查实体是否拥有组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// Query1 返回所有拥有组件 T 的实体ID（升序）
func Query1[T any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T]())
}
